// Package models defines data structures and domain types.
package models

// Profile represents a TrustHub customer profile (compliance bundle).
type Profile struct {
	SID          string `json:"sid"`
	FriendlyName string `json:"friendly_name"`
	Status       string `json:"status"`
	Email        string `json:"email"`
	PolicySID    string `json:"policy_sid,omitempty"`
	DateCreated  string `json:"date_created,omitempty"`
	DateUpdated  string `json:"date_updated,omitempty"`
}

// EntityAssignment links a supporting object (document, end user) to a profile.
type EntityAssignment struct {
	SID        string `json:"sid"`
	ObjectSID  string `json:"object_sid"`
	ObjectType string `json:"object_type,omitempty"`
}

// ChannelEndpointAssignment links a channel endpoint (phone number) to a profile.
type ChannelEndpointAssignment struct {
	SID                 string `json:"sid"`
	ChannelEndpointSID  string `json:"channel_endpoint_sid"`
	ChannelEndpointType string `json:"channel_endpoint_type,omitempty"`
}

// ProfileExport is the flattened projection written by the profile JSON export.
type ProfileExport struct {
	SID          string `json:"sid"`
	FriendlyName string `json:"friendly_name"`
	Status       string `json:"status"`
	Email        string `json:"email"`
	DateCreated  string `json:"date_created"`
	DateUpdated  string `json:"date_updated"`
}
