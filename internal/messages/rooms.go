package messages

import (
	"context"
	"fmt"
	"net/url"

	jsoniter "github.com/json-iterator/go"

	"github.com/rickgao/upwork-mc/internal/api"
)

const (
	roomsPrefix = "/messages/v3"

	// RoomTypeOneOnOne is the only room type CreateRoom creates.
	RoomTypeOneOnOne = "ONE_ON_ONE"

	// roomStoriesLimit is the number of stories fetched with room details.
	roomStoriesLimit = "1000"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// User is a room participant.
type User struct {
	UserID string `json:"userId"`
	OrgID  string `json:"orgId,omitempty"`
}

// Story is a message posted into a room. SendMessageToRoom accepts any
// JSON-serializable value; Story covers the common case.
type Story struct {
	Message string `json:"message"`
}

type newRoom struct {
	RoomName string `json:"roomName"`
	RoomType string `json:"roomType"`
	Users    []User `json:"users"`
}

func withStories() url.Values {
	return url.Values{
		"returnStories": {"true"},
		"limit":         {roomStoriesLimit},
	}
}

// ListRooms lists the rooms of a company, including their users.
func (r *Router) ListRooms(ctx context.Context, company string) (*api.Response, error) {
	if err := requireIDs("company", company); err != nil {
		return nil, err
	}
	return r.client.Get(ctx, r.entryPoint, join(roomsPrefix, company)+"/rooms",
		url.Values{"returnUsers": {"true"}})
}

// GetRoomDetails returns a room with up to 1000 of its stories.
func (r *Router) GetRoomDetails(ctx context.Context, company, roomID string) (*api.Response, error) {
	if err := requireIDs("company", company, "roomID", roomID); err != nil {
		return nil, err
	}
	path := join(roomsPrefix, company) + join("/rooms", roomID)
	return r.client.Get(ctx, r.entryPoint, path, withStories())
}

// GetRoomByApplicationID returns the room linked to a job application,
// with up to 1000 of its stories.
func (r *Router) GetRoomByApplicationID(ctx context.Context, username, applicationID string) (*api.Response, error) {
	if err := requireIDs("username", username, "applicationID", applicationID); err != nil {
		return nil, err
	}
	path := join(roomsPrefix, username) + join("/rooms/applications", applicationID)
	return r.client.Get(ctx, r.entryPoint, path, withStories())
}

// GetApplicationRoom returns the room linked to a job application using the
// /messages/v3/rooms/{username}/applications/{id} route. It sends no query
// and the response carries no stories.
func (r *Router) GetApplicationRoom(ctx context.Context, username, applicationID string) (*api.Response, error) {
	if err := requireIDs("username", username, "applicationID", applicationID); err != nil {
		return nil, err
	}
	path := join(roomsPrefix+"/rooms", username) + join("/applications", applicationID)
	return r.client.Get(ctx, r.entryPoint, path, nil)
}

// CreateRoom creates a one-on-one room between username and user.
func (r *Router) CreateRoom(ctx context.Context, username, roomName string, user User) (*api.Response, error) {
	if err := requireIDs("username", username, "roomName", roomName); err != nil {
		return nil, err
	}

	room, err := json.Marshal(newRoom{
		RoomName: roomName,
		RoomType: RoomTypeOneOnOne,
		Users:    []User{user},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal room: %w", err)
	}

	return r.client.Post(ctx, r.entryPoint, join(roomsPrefix, username)+"/rooms",
		url.Values{"room": {string(room)}})
}

// SendMessageToRoom posts story into a room.
func (r *Router) SendMessageToRoom(ctx context.Context, username, roomID string, story any) (*api.Response, error) {
	if err := requireIDs("username", username, "roomID", roomID); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(story)
	if err != nil {
		return nil, fmt.Errorf("marshal story: %w", err)
	}

	path := join(roomsPrefix, username) + join("/rooms", roomID) + "/stories"
	return r.client.Post(ctx, r.entryPoint, path, url.Values{"story": {string(payload)}})
}
