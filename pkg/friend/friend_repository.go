package friend

import (
	"Recipe-Manager-Backend/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	FriendRepository interface {
		CreateFriendRequest(ctx context.Context, request *entities.FriendRequest) error
		GetFriendRequestByID(ctx context.Context, id string) (*entities.FriendRequest, error)
		GetFriendRequestBetween(ctx context.Context, userID, otherUserID string) (*entities.FriendRequest, error)
		GetPendingRequestsFor(ctx context.Context, recipientID string) ([]*entities.FriendRequest, error)
		UpdateFriendRequest(ctx context.Context, request *entities.FriendRequest) error
		DeleteFriendRequest(ctx context.Context, id string) error
		GetAcceptedFriendships(ctx context.Context, userID string) ([]*entities.FriendRequest, error)
		DeleteAcceptedBetween(ctx context.Context, userID, otherUserID string) (int64, error)
		AreFriends(ctx context.Context, userID, otherUserID string) (bool, error)
	}

	friendRepository struct {
		db *gorm.DB
	}
)

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

// CreateFriendRequest inserts the request. The unique index on pair_key is
// the real duplicate guard; a concurrent insert for the same pair loses here
// and surfaces as gorm.ErrDuplicatedKey.
func (r *friendRepository) CreateFriendRequest(ctx context.Context, request *entities.FriendRequest) error {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "pair_key"}}, DoNothing: true}).
		Create(request)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrDuplicatedKey
	}
	return nil
}

func (r *friendRepository) GetFriendRequestByID(ctx context.Context, id string) (*entities.FriendRequest, error) {
	var request entities.FriendRequest
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Recipient").
		Where("id = ?", id).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *friendRepository) GetFriendRequestBetween(ctx context.Context, userID, otherUserID string) (*entities.FriendRequest, error) {
	var request entities.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)",
			userID, otherUserID, otherUserID, userID).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *friendRepository) GetPendingRequestsFor(ctx context.Context, recipientID string) ([]*entities.FriendRequest, error) {
	var requests []*entities.FriendRequest
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Recipient").
		Where("recipient_id = ? AND status = ?", recipientID, entities.FriendStatusPending).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *friendRepository) UpdateFriendRequest(ctx context.Context, request *entities.FriendRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

func (r *friendRepository) DeleteFriendRequest(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FriendRequest{}).Error
}

func (r *friendRepository) GetAcceptedFriendships(ctx context.Context, userID string) ([]*entities.FriendRequest, error) {
	var requests []*entities.FriendRequest
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Recipient").
		Where("(requester_id = ? OR recipient_id = ?) AND status = ?",
			userID, userID, entities.FriendStatusAccepted).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *friendRepository) DeleteAcceptedBetween(ctx context.Context, userID, otherUserID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("((requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)) AND status = ?",
			userID, otherUserID, otherUserID, userID, entities.FriendStatusAccepted).
		Delete(&entities.FriendRequest{})
	return res.RowsAffected, res.Error
}

func (r *friendRepository) AreFriends(ctx context.Context, userID, otherUserID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.FriendRequest{}).
		Where("((requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)) AND status = ?",
			userID, otherUserID, otherUserID, userID, entities.FriendStatusAccepted).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
