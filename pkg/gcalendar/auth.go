package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// NewClientFromCredentialsFile creates a Calendar client from a credentials
// JSON file path. Service Account and OAuth installed-app formats are supported.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials
// JSON bytes. Service Account credentials authenticate directly; OAuth
// installed-app credentials require a previously generated token file
// (see scripts/gcal-auth).
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	// Service Account path
	if config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	// OAuth installed-app path
	oauthConfig, err := installedAppConfig(credentialsJSON)
	if err != nil {
		return nil, err
	}

	if tokenPath == "" {
		tokenPath = "token.json"
	}
	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("credentials are OAuth installed-app type but %s is missing: run scripts/gcal-auth first", tokenPath)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", err)
	}

	return &Client{service: svc}, nil
}

// InstalledAppConfig parses OAuth installed-app credentials into an
// oauth2.Config. Exposed for the gcal-auth token generator.
func InstalledAppConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	return installedAppConfig(credentialsJSON)
}

func installedAppConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	var creds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentialsJSON, &creds); err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	if creds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: missing installed.client_id")
	}

	redirectURL := "urn:ietf:wg:oauth:2.0:oob"
	if len(creds.Installed.RedirectURIs) > 0 {
		redirectURL = creds.Installed.RedirectURIs[0]
	}

	return &oauth2.Config{
		ClientID:     creds.Installed.ClientID,
		ClientSecret: creds.Installed.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}, nil
}
