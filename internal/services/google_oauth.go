package services

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var ErrInvalidGoogleAudience = errors.New("invalid google audience")

// GoogleOAuthVerifier validates Google ID tokens via the tokeninfo endpoint.
type GoogleOAuthVerifier struct {
	clientID string
}

func NewGoogleOAuthVerifier(clientID string) *GoogleOAuthVerifier {
	return &GoogleOAuthVerifier{clientID: clientID}
}

func (v *GoogleOAuthVerifier) Verify(ctx context.Context, idToken string) (*GoogleProfile, error) {
	oauth2Service, err := oauth2.NewService(ctx, option.WithHTTPClient(&http.Client{}))
	if err != nil {
		return nil, err
	}

	tokenInfoCall := oauth2Service.Tokeninfo()
	tokenInfoCall.IdToken(idToken)
	tokenInfo, err := tokenInfoCall.Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	if tokenInfo.Audience != v.clientID {
		return nil, ErrInvalidGoogleAudience
	}

	return &GoogleProfile{
		Sub:   tokenInfo.UserId,
		Email: tokenInfo.Email,
	}, nil
}
