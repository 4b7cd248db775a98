package dynamostore

import (
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// isExpired reports whether an item carries a ttl at or before now. DynamoDB
// removes expired items lazily, so they can still be returned by GetItem.
func isExpired(item map[string]types.AttributeValue, now time.Time) bool {
	ttlAttr, exists := item["ttl"]
	if !exists {
		return false
	}
	ttlNum, ok := ttlAttr.(*types.AttributeValueMemberN)
	if !ok {
		return false
	}
	ttl, err := strconv.ParseInt(ttlNum.Value, 10, 64)
	if err != nil {
		return false
	}
	return ttl <= now.Unix()
}
