package godynamo

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

/* Tables */

// Table represents a table and holds basic information about it.
// This object is used to access the Dynamo Table requested for each CRUD op.
// A Table with an empty SortKeyName has a simple (partition key only) schema.
type Table struct {
	TableName      string
	PrimaryKeyName string
	PrimaryKeyType string
	SortKeyName    string
	SortKeyType    string
}

// HasSortKey reports whether the table has a composite key.
func (t *Table) HasSortKey() bool {
	return t.SortKeyName != ""
}

type ListTableParams struct {
	StartTable *string `json:"start_table"`
	Limit      *int32  `json:"limit"`
}

// TableInfo is the subset of a table description the samples print.
type TableInfo struct {
	Name      string   `json:"name"`
	Arn       string   `json:"arn"`
	Status    string   `json:"status"`
	ItemCount int64    `json:"item_count"`
	SizeBytes int64    `json:"size_bytes"`
	KeyNames  []string `json:"key_names"`
}

// CreateNewTableObj creates a new Table struct.
// The Table's key's Go types must be declared as strings.
// ex: t := CreateNewTableObj("my_table", "Year", "int", "MovieName", "string")
// An empty sKeyName creates a table with a simple key.
func CreateNewTableObj(tableName, pKeyName, pType, sKeyName, sType string) *Table {
	typeMap := map[string]string{
		"[]byte": "B",
		"int":    "N",
		"string": "S",
		"B":      "B",
		"N":      "N",
		"S":      "S",
	}

	t := &Table{TableName: tableName, PrimaryKeyName: pKeyName, PrimaryKeyType: typeMap[pType]}
	if sKeyName != "" {
		t.SortKeyName, t.SortKeyType = sKeyName, typeMap[sType]
	}
	return t
}

/* Queries */

// Query holds the search values for both the Partition and Sort Keys.
type Query struct {
	PrimaryValue any
	SortValue    any
}

// QueryRow is one item with its attributes decoded to Go values.
type QueryRow = map[string]any

type QueryResults struct {
	Rows    []QueryRow                      `json:"results"`
	Count   int32                           `json:"count"`
	PerPage int32                           `json:"per_page,omitempty"`
	LastKey map[string]types.AttributeValue `json:"last_key,omitempty"`
}

type ScanResults struct {
	Rows    []QueryRow                      `json:"results"`
	Count   int32                           `json:"count"`
	PerPage int32                           `json:"per_page,omitempty"`
	LastKey map[string]types.AttributeValue `json:"last_key,omitempty"`
}

// New creates a new query by setting the Partition Key and Sort Key values.
func (q *Query) New(pv, sv any) { q.PrimaryValue, q.SortValue = pv, sv }

// Reset clears all fields.
func (q *Query) Reset() {
	q.PrimaryValue, q.SortValue = nil, nil
}

// CreateNewQueryObj creates a new Query struct.
// pval, sval == Primary/Partition key, Sort Key
func CreateNewQueryObj(pval, sval any) *Query {
	return &Query{PrimaryValue: pval, SortValue: sval}
}

func createAV(val any) types.AttributeValue {
	switch v := val.(type) {
	case nil:
		return &types.AttributeValueMemberNULL{Value: true}
	case []byte:
		return &types.AttributeValueMemberB{Value: v}
	case bool:
		return &types.AttributeValueMemberBOOL{Value: v}
	case [][]byte:
		return &types.AttributeValueMemberBS{Value: v}
	case []types.AttributeValue:
		return &types.AttributeValueMemberL{Value: v}
	case map[string]types.AttributeValue:
		return &types.AttributeValueMemberM{Value: v}
	case int:
		return &types.AttributeValueMemberN{Value: strconv.Itoa(v)}
	case int64:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}
	case float64:
		return &types.AttributeValueMemberN{Value: strconv.FormatFloat(v, 'f', -1, 64)}
	case []int:
		ns := make([]string, 0, len(v))
		for _, n := range v {
			ns = append(ns, strconv.Itoa(n))
		}
		return &types.AttributeValueMemberNS{Value: ns}
	case string:
		return &types.AttributeValueMemberS{Value: v}
	case []string:
		return &types.AttributeValueMemberSS{Value: v}
	}
	return nil
}

// keyMaker creates a map of Partition and Sort Keys.
func keyMaker(q *Query, t *Table) map[string]types.AttributeValue {
	keys := make(map[string]types.AttributeValue)
	keys[t.PrimaryKeyName] = createAV(q.PrimaryValue)
	if !t.HasSortKey() {
		return keys
	}
	keys[t.SortKeyName] = createAV(q.SortValue)
	return keys
}
