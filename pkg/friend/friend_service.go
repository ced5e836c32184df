package friend

import (
	"Recipe-Manager-Backend/domain"
	"Recipe-Manager-Backend/entities"
	"Recipe-Manager-Backend/internal/utils/mailing"
	"Recipe-Manager-Backend/pkg/user"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FriendService interface {
		SendFriendRequest(ctx context.Context, req domain.SendFriendRequestRequest, userID string) (domain.FriendRequestResponse, error)
		GetFriendRequests(ctx context.Context, userID string) ([]domain.FriendRequestResponse, error)
		AcceptFriendRequest(ctx context.Context, requestID string, userID string) (domain.FriendRequestResponse, error)
		RejectFriendRequest(ctx context.Context, requestID string, userID string) error
		GetFriends(ctx context.Context, userID string) ([]domain.FriendResponse, error)
		RemoveFriend(ctx context.Context, friendID string, userID string) error
	}

	friendService struct {
		friendRepository FriendRepository
		userRepository   user.UserRepository
		mailer           mailing.Mailer
	}
)

func NewFriendService(friendRepository FriendRepository, userRepository user.UserRepository, mailer mailing.Mailer) FriendService {
	return &friendService{
		friendRepository: friendRepository,
		userRepository:   userRepository,
		mailer:           mailer,
	}
}

func (s *friendService) SendFriendRequest(ctx context.Context, req domain.SendFriendRequestRequest, userID string) (domain.FriendRequestResponse, error) {
	recipient, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FriendRequestResponse{}, domain.ErrUserNotFound
		}
		return domain.FriendRequestResponse{}, err
	}

	if recipient.ID.String() == userID {
		return domain.FriendRequestResponse{}, domain.ErrFriendSelfRequest
	}

	requester, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FriendRequestResponse{}, domain.ErrUserNotFound
		}
		return domain.FriendRequestResponse{}, err
	}

	// Fast path; the pair_key unique index catches the race below.
	if _, err := s.friendRepository.GetFriendRequestBetween(ctx, userID, recipient.ID.String()); err == nil {
		return domain.FriendRequestResponse{}, domain.ErrFriendRequestExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.FriendRequestResponse{}, err
	}

	request := &entities.FriendRequest{
		RequesterID: requester.ID,
		RecipientID: recipient.ID,
		PairKey:     entities.FriendPairKey(requester.ID, recipient.ID),
		Status:      entities.FriendStatusPending,
	}
	if err := s.friendRepository.CreateFriendRequest(ctx, request); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.FriendRequestResponse{}, domain.ErrFriendRequestExists
		}
		return domain.FriendRequestResponse{}, err
	}
	request.Requester = requester
	request.Recipient = recipient

	// Best effort; a mail failure never fails the request.
	_ = s.mailer.SendMail(
		recipient.Email,
		"New friend request",
		fmt.Sprintf("<p>%s (%s) wants to be your friend.</p>", requester.Name, requester.Email),
	)

	return toFriendRequestResponse(request), nil
}

func (s *friendService) GetFriendRequests(ctx context.Context, userID string) ([]domain.FriendRequestResponse, error) {
	requests, err := s.friendRepository.GetPendingRequestsFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FriendRequestResponse, 0, len(requests))
	for _, request := range requests {
		result = append(result, toFriendRequestResponse(request))
	}
	return result, nil
}

func (s *friendService) AcceptFriendRequest(ctx context.Context, requestID string, userID string) (domain.FriendRequestResponse, error) {
	request, err := s.friendRepository.GetFriendRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FriendRequestResponse{}, domain.ErrFriendRequestNotFound
		}
		return domain.FriendRequestResponse{}, err
	}

	if request.RecipientID.String() != userID {
		return domain.FriendRequestResponse{}, domain.ErrNotRequestRecipient
	}

	// A request is consumed by acceptance; accepting twice reports not found.
	if request.Status != entities.FriendStatusPending {
		return domain.FriendRequestResponse{}, domain.ErrFriendRequestNotFound
	}

	request.Status = entities.FriendStatusAccepted
	if err := s.friendRepository.UpdateFriendRequest(ctx, request); err != nil {
		return domain.FriendRequestResponse{}, err
	}
	return toFriendRequestResponse(request), nil
}

func (s *friendService) RejectFriendRequest(ctx context.Context, requestID string, userID string) error {
	request, err := s.friendRepository.GetFriendRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFriendRequestNotFound
		}
		return err
	}

	if request.RecipientID.String() != userID {
		return domain.ErrNotRequestRecipient
	}

	return s.friendRepository.DeleteFriendRequest(ctx, requestID)
}

func (s *friendService) GetFriends(ctx context.Context, userID string) ([]domain.FriendResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	friendships, err := s.friendRepository.GetAcceptedFriendships(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FriendResponse, 0, len(friendships))
	for _, friendship := range friendships {
		other := friendship.OtherParty(userUUID)
		if other == nil {
			continue
		}
		result = append(result, domain.FriendResponse{
			ID:           other.ID.String(),
			Name:         other.Name,
			Email:        other.Email,
			FriendshipID: friendship.ID.String(),
		})
	}
	return result, nil
}

func (s *friendService) RemoveFriend(ctx context.Context, friendID string, userID string) error {
	deleted, err := s.friendRepository.DeleteAcceptedBetween(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrFriendNotFound
	}
	return nil
}

func toFriendRequestResponse(request *entities.FriendRequest) domain.FriendRequestResponse {
	resp := domain.FriendRequestResponse{
		ID:     request.ID.String(),
		Status: request.Status,
	}
	if request.Requester != nil {
		resp.Requester = domain.UserResponse{
			ID:    request.Requester.ID.String(),
			Name:  request.Requester.Name,
			Email: request.Requester.Email,
		}
	}
	if request.Recipient != nil {
		resp.Recipient = domain.UserResponse{
			ID:    request.Recipient.ID.String(),
			Name:  request.Recipient.Name,
			Email: request.Recipient.Email,
		}
	}
	return resp
}
