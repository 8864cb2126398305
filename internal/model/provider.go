package model

import "github.com/google/uuid"

type Provider struct {
	ID             uuid.UUID `json:"providerId"`
	ProviderName   string    `json:"providerName"`
	ContactDetails string    `json:"contactDetails"`
}
