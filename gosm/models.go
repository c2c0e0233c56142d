package gosm

import "time"

type GetSecretResponse struct {
	ARN       string `json:"arn"`
	Name      string `json:"name"`
	Secret    Secret `json:"secret"`
	IsKeyPair bool   `json:"is_key_pair"`
}

// Secret is the value of a secret. Key is set when the secret is a JSON
// object holding the value under the secret's own ID.
type Secret struct {
	Key   *string `json:"key"`
	Value string  `json:"value"`
}

type CreateSecretResponse struct {
	ARN       string `json:"arn"`
	Name      string `json:"name"`
	VersionId string `json:"version_id"`
}

type SecretVersion struct {
	VersionId        string    `json:"version_id"`
	Stages           []string  `json:"stages"`
	CreatedDate      time.Time `json:"created_date"`
	LastAccessedDate time.Time `json:"last_accessed_date,omitempty"`
}

type ListSecretVersionsResponse struct {
	ARN      string          `json:"arn"`
	Name     string          `json:"name"`
	Versions []SecretVersion `json:"versions"`
}

type DeleteSecretResponse struct {
	ARN          string    `json:"arn"`
	Name         string    `json:"name"`
	DeletionDate time.Time `json:"deletion_date"`
}
