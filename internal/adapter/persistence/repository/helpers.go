package repository

import (
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Money and price attributes are stored as DynamoDB strings to avoid
// float drift in the N representation.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// filterExpression collects equality conditions for a Scan.
type filterExpression struct {
	conds  []string
	names  map[string]string
	values map[string]types.AttributeValue
}

func (f *filterExpression) equals(attr, value string) {
	if value == "" {
		return
	}
	if f.names == nil {
		f.names = map[string]string{}
		f.values = map[string]types.AttributeValue{}
	}
	placeholder := ":" + attr
	f.conds = append(f.conds, "#"+attr+" = "+placeholder)
	f.names["#"+attr] = attr
	f.values[placeholder] = &types.AttributeValueMemberS{Value: value}
}

func (f *filterExpression) empty() bool {
	return len(f.conds) == 0
}

func (f *filterExpression) expression() string {
	return strings.Join(f.conds, " AND ")
}
