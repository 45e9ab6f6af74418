package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bglit/lunch-backend/internal/dayclock"
	"github.com/bglit/lunch-backend/internal/dto"
	"github.com/bglit/lunch-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrNotOwner           = errors.New("not authorized to modify this resource")
	ErrAlreadyVotedToday  = errors.New("you can only vote for one restaurant per day. Unvote from your current choice first")
)

type RestaurantService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{db: db, now: time.Now}
}

// List returns active restaurants with today's vote state, sorted by today's
// count descending then newest first. Counts are derived from the votes table
// on every read so day rollover never needs a write.
func (s *RestaurantService) List() ([]dto.RestaurantResponse, error) {
	var restaurants []models.Restaurant
	if err := s.db.Preload("CreatedBy").Where("is_active = ?", true).Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	votesByRestaurant, err := s.todayVotes()
	if err != nil {
		return nil, err
	}

	result := make([]dto.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		result = append(result, toRestaurantResponse(&restaurants[i], votesByRestaurant[restaurants[i].ID]))
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Votes != result[j].Votes {
			return result[i].Votes > result[j].Votes
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (s *RestaurantService) Get(id uuid.UUID) (*dto.RestaurantResponse, error) {
	var restaurant models.Restaurant
	if err := s.db.Preload("CreatedBy").First(&restaurant, "id = ?", id).Error; err != nil {
		return nil, ErrRestaurantNotFound
	}

	votesByRestaurant, err := s.todayVotes()
	if err != nil {
		return nil, err
	}

	resp := toRestaurantResponse(&restaurant, votesByRestaurant[restaurant.ID])
	return &resp, nil
}

func (s *RestaurantService) Create(userID uuid.UUID, req *dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("restaurant name is required")
	}

	emoji := req.Emoji
	if emoji == "" {
		emoji = models.DefaultEmoji
	}

	restaurant := models.Restaurant{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		LogoURL:     req.LogoURL,
		Emoji:       emoji,
		IsActive:    true,
		CreatedByID: userID,
	}

	if err := s.db.Create(&restaurant).Error; err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}

	if err := s.db.Preload("CreatedBy").First(&restaurant, "id = ?", restaurant.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload restaurant: %w", err)
	}

	resp := toRestaurantResponse(&restaurant, nil)
	return &resp, nil
}

func (s *RestaurantService) Update(userID, id uuid.UUID, req *dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, "id = ?", id).Error; err != nil {
		return nil, ErrRestaurantNotFound
	}
	if restaurant.CreatedByID != userID {
		return nil, ErrNotOwner
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		restaurant.Name = name
	}
	if desc := strings.TrimSpace(req.Description); desc != "" {
		restaurant.Description = desc
	}
	if req.LogoURL != "" {
		restaurant.LogoURL = req.LogoURL
	}
	if req.Emoji != "" {
		restaurant.Emoji = req.Emoji
	}
	if req.IsActive != nil {
		restaurant.IsActive = *req.IsActive
	}

	if err := s.db.Save(&restaurant).Error; err != nil {
		return nil, fmt.Errorf("failed to update restaurant: %w", err)
	}

	return s.Get(id)
}

// Delete hard-removes the restaurant; its vote and order history survives.
func (s *RestaurantService) Delete(userID, id uuid.UUID) error {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, "id = ?", id).Error; err != nil {
		return ErrRestaurantNotFound
	}
	if restaurant.CreatedByID != userID {
		return ErrNotOwner
	}

	return s.db.Delete(&restaurant).Error
}

// ToggleVote implements the per-day single-slot policy: voting for today's
// choice again removes it; voting while holding a vote for another restaurant
// today is rejected. The unique (user_id, vote_date) index backstops the race
// between two concurrent first votes.
func (s *RestaurantService) ToggleVote(userID, restaurantID uuid.UUID) (bool, *dto.RestaurantResponse, error) {
	day := dayclock.DayOf(s.now())
	removed := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, "id = ?", restaurantID).Error; err != nil {
			return ErrRestaurantNotFound
		}

		var existing models.Vote
		err := tx.Where("user_id = ? AND vote_date = ?", userID, day).First(&existing).Error
		if err == nil {
			if existing.RestaurantID != restaurantID {
				return ErrAlreadyVotedToday
			}
			removed = true
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		vote := models.Vote{
			ID:           uuid.New(),
			UserID:       userID,
			RestaurantID: restaurantID,
			VoteDate:     day,
		}
		if err := tx.Create(&vote).Error; err != nil {
			// A concurrent request won the unique index race.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyVotedToday
			}
			return fmt.Errorf("failed to record vote: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, nil, err
	}

	resp, err := s.Get(restaurantID)
	if err != nil {
		return false, nil, err
	}
	return removed, resp, nil
}

func (s *RestaurantService) todayVotes() (map[uuid.UUID][]models.Vote, error) {
	day := dayclock.DayOf(s.now())

	var votes []models.Vote
	if err := s.db.Preload("User").Where("vote_date = ?", day).Find(&votes).Error; err != nil {
		return nil, fmt.Errorf("failed to load today's votes: %w", err)
	}

	byRestaurant := make(map[uuid.UUID][]models.Vote)
	for _, v := range votes {
		byRestaurant[v.RestaurantID] = append(byRestaurant[v.RestaurantID], v)
	}
	return byRestaurant, nil
}

func toRestaurantResponse(r *models.Restaurant, todayVotes []models.Vote) dto.RestaurantResponse {
	voters := make([]dto.UserSummary, 0, len(todayVotes))
	for _, v := range todayVotes {
		voters = append(voters, dto.UserSummary{
			ID:       v.User.ID,
			Username: v.User.Username,
			Email:    v.User.Email,
		})
	}

	return dto.RestaurantResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		LogoURL:     r.LogoURL,
		Emoji:       r.Emoji,
		IsActive:    r.IsActive,
		Votes:       len(todayVotes),
		Voters:      voters,
		CreatedBy: dto.UserSummary{
			ID:       r.CreatedBy.ID,
			Username: r.CreatedBy.Username,
			Email:    r.CreatedBy.Email,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
