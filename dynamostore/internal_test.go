package dynamostore

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/paramconf/resolve"
)

// --- isExpired Tests ---

func TestIsExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name     string
		item     map[string]types.AttributeValue
		expected bool
	}{
		{
			name:     "no TTL attribute",
			item:     map[string]types.AttributeValue{},
			expected: false,
		},
		{
			name: "TTL in past",
			item: map[string]types.AttributeValue{
				"ttl": &types.AttributeValueMemberN{Value: "1000000000"},
			},
			expected: true,
		},
		{
			name: "TTL in future",
			item: map[string]types.AttributeValue{
				"ttl": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix()+3600, 10)},
			},
			expected: false,
		},
		{
			name: "TTL is now",
			item: map[string]types.AttributeValue{
				"ttl": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
			},
			expected: true,
		},
		{
			name: "TTL wrong type",
			item: map[string]types.AttributeValue{
				"ttl": &types.AttributeValueMemberS{Value: "1000000000"},
			},
			expected: false,
		},
		{
			name: "TTL unparseable",
			item: map[string]types.AttributeValue{
				"ttl": &types.AttributeValueMemberN{Value: "soon"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isExpired(tt.item, now)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

// --- Config Tests ---

func TestConfigValidate_FillsDefaults(t *testing.T) {
	cfg := Config{}
	cfg.validate()

	if cfg != DefaultConfig() {
		t.Errorf("expected %+v, got %+v", DefaultConfig(), cfg)
	}
}

func TestConfigValidate_KeepsValues(t *testing.T) {
	cfg := Config{TableName: "t", KeyAttr: "pk", ValueAttr: "v"}
	cfg.validate()

	if cfg.TableName != "t" || cfg.KeyAttr != "pk" || cfg.ValueAttr != "v" {
		t.Errorf("expected values preserved, got %+v", cfg)
	}
}

// --- decodeValue Tests ---

func TestDecodeValue(t *testing.T) {
	s := &Store{config: DefaultConfig(), now: func() time.Time { return time.Unix(1_700_000_000, 0) }}

	tests := []struct {
		name            string
		item            map[string]types.AttributeValue
		want            string
		wantNotFound    bool
		wantUnavailable bool
	}{
		{
			name: "string value",
			item: map[string]types.AttributeValue{
				"name":  &types.AttributeValueMemberS{Value: "k"},
				"value": &types.AttributeValueMemberS{Value: "v"},
			},
			want: "v",
		},
		{
			name:         "nil item",
			item:         nil,
			wantNotFound: true,
		},
		{
			name: "missing value attribute",
			item: map[string]types.AttributeValue{
				"name": &types.AttributeValueMemberS{Value: "k"},
			},
			wantNotFound: true,
		},
		{
			name: "empty value",
			item: map[string]types.AttributeValue{
				"value": &types.AttributeValueMemberS{Value: ""},
			},
			wantNotFound: true,
		},
		{
			name: "null value",
			item: map[string]types.AttributeValue{
				"value": &types.AttributeValueMemberNULL{Value: true},
			},
			wantNotFound: true,
		},
		{
			name: "expired",
			item: map[string]types.AttributeValue{
				"value": &types.AttributeValueMemberS{Value: "v"},
				"ttl":   &types.AttributeValueMemberN{Value: "1000000000"},
			},
			wantNotFound: true,
		},
		{
			name: "number value",
			item: map[string]types.AttributeValue{
				"value": &types.AttributeValueMemberN{Value: "3"},
			},
			wantUnavailable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.decodeValue("k", tt.item)
			switch {
			case tt.wantNotFound:
				if !errors.Is(err, resolve.ErrKeyNotFound) {
					t.Errorf("expected ErrKeyNotFound, got %v", err)
				}
			case tt.wantUnavailable:
				if !errors.Is(err, resolve.ErrStoreUnavailable) {
					t.Errorf("expected ErrStoreUnavailable, got %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("expected %q, got %q", tt.want, got)
				}
			}
		})
	}
}
