package client

import (
	"context"
	"strings"
	"testing"
)

func TestNewYouTubeCatalogClient(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		wantErr bool
	}{
		{
			name:    "valid API key",
			apiKey:  "test-api-key-12345",
			wantErr: false,
		},
		{
			name:    "empty API key",
			apiKey:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewYouTubeCatalogClient(tt.apiKey)

			if (err != nil) != tt.wantErr {
				t.Errorf("NewYouTubeCatalogClient() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if client == nil {
					t.Error("Expected non-nil client when no error")
					return
				}

				if client.apiKey != tt.apiKey {
					t.Errorf("Expected apiKey %s, got %s", tt.apiKey, client.apiKey)
				}

				if client.uploadsCache == nil {
					t.Error("Expected uploadsCache to be initialized")
				}
			}
		})
	}
}

func TestListUploadsRequiresConnection(t *testing.T) {
	client, err := NewYouTubeCatalogClient("test-api-key")
	if err != nil {
		t.Fatalf("NewYouTubeCatalogClient() error = %v", err)
	}

	_, err = client.ListUploads(context.Background(), "UCtest", "")
	if err == nil {
		t.Fatal("Expected error when listing without connecting")
	}
	if !strings.Contains(err.Error(), "not connected") {
		t.Errorf("Expected not connected error, got %v", err)
	}
}

func TestGetVideoDetailsRequiresConnection(t *testing.T) {
	client, err := NewYouTubeCatalogClient("test-api-key")
	if err != nil {
		t.Fatalf("NewYouTubeCatalogClient() error = %v", err)
	}

	_, err = client.GetVideoDetails(context.Background(), []string{"video1"})
	if err == nil {
		t.Fatal("Expected error when fetching details without connecting")
	}
	if !strings.Contains(err.Error(), "not connected") {
		t.Errorf("Expected not connected error, got %v", err)
	}
}

func TestGetVideoDetailsEmptyInput(t *testing.T) {
	client, err := NewYouTubeCatalogClient("test-api-key")
	if err != nil {
		t.Fatalf("NewYouTubeCatalogClient() error = %v", err)
	}

	// An empty request is a no-op even before Connect.
	details, err := client.GetVideoDetails(context.Background(), nil)
	if err != nil {
		t.Errorf("Expected no error for empty input, got %v", err)
	}
	if details != nil {
		t.Errorf("Expected nil details for empty input, got %v", details)
	}
}

func TestGetVideoDetailsBatchLimit(t *testing.T) {
	client, err := NewYouTubeCatalogClient("test-api-key")
	if err != nil {
		t.Fatalf("NewYouTubeCatalogClient() error = %v", err)
	}

	ids := make([]string, MaxDetailBatch+1)
	for i := range ids {
		ids[i] = "video"
	}

	_, err = client.GetVideoDetails(context.Background(), ids)
	if err == nil {
		t.Fatal("Expected error for oversized batch")
	}
	if !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("Expected batch size error, got %v", err)
	}
}
