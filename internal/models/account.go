package models

// Account represents a Twilio account or subaccount.
type Account struct {
	SID          string `json:"sid"`
	FriendlyName string `json:"friendly_name"`
	Status       string `json:"status"`
	Type         string `json:"type,omitempty"`
	OwnerSID     string `json:"owner_account_sid,omitempty"`
	DateCreated  string `json:"date_created,omitempty"`
}

// Brand represents an A2P 10DLC brand registration.
type Brand struct {
	SID                      string `json:"sid"`
	BrandName                string `json:"brand_name"`
	Status                   string `json:"status"`
	CustomerProfileBundleSID string `json:"customer_profile_bundle_sid,omitempty"`
}

// Campaign represents an A2P campaign registration.
type Campaign struct {
	SID      string `json:"sid"`
	BrandSID string `json:"brand_registration_sid"`
	UseCase  string `json:"use_case,omitempty"`
	Status   string `json:"status"`
}

// MessagingService represents a messaging service resource.
type MessagingService struct {
	SID          string `json:"sid"`
	FriendlyName string `json:"friendly_name"`
	UseCase      string `json:"usecase,omitempty"`
	DateCreated  string `json:"date_created,omitempty"`
}
