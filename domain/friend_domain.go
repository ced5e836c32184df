package domain

import (
	"errors"
)

var (
	MessageSuccessSendFriendRequest   = "friend request sent successfully"
	MessageSuccessGetFriendRequests   = "success get friend requests"
	MessageSuccessAcceptFriendRequest = "friend request accepted"
	MessageSuccessRejectFriendRequest = "friend request rejected"
	MessageSuccessGetFriends          = "success get friends"
	MessageSuccessRemoveFriend        = "friend removed successfully"

	MessageFailedSendFriendRequest   = "failed to send friend request"
	MessageFailedGetFriendRequests   = "failed to get friend requests"
	MessageFailedAcceptFriendRequest = "failed to accept friend request"
	MessageFailedRejectFriendRequest = "failed to reject friend request"
	MessageFailedGetFriends          = "failed to get friends"
	MessageFailedRemoveFriend        = "failed to remove friend"

	ErrFriendRequestNotFound = errors.New("friend request not found")
	ErrFriendRequestExists   = errors.New("friend request already exists")
	ErrFriendSelfRequest     = errors.New("cannot send friend request to yourself")
	ErrNotRequestRecipient   = errors.New("not the recipient of this friend request")
	ErrFriendNotFound        = errors.New("friend not found")
	ErrNotFriends            = errors.New("users are not friends")
)

type (
	SendFriendRequestRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	FriendRequestResponse struct {
		ID        string       `json:"id"`
		Requester UserResponse `json:"requester"`
		Recipient UserResponse `json:"recipient"`
		Status    string       `json:"status"`
	}

	// FriendResponse projects an accepted friendship to the other party,
	// keeping the request id around so the caller can unfriend.
	FriendResponse struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Email        string `json:"email"`
		FriendshipID string `json:"friendship_id"`
	}
)
