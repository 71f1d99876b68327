package dummy

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
)

const dynamoTargetPrefix = "DynamoDB_20120810."

type dynamoItem map[string]interface{}

type dynamoInput struct {
	TableName                 string
	Key                       dynamoItem
	Item                      dynamoItem
	ConditionExpression       string
	ExpressionAttributeNames  map[string]string
	ExpressionAttributeValues map[string]interface{}
}

// DynamoDB serves CreateTable, GetItem and PutItem over the JSON protocol for tables keyed on a string "id".
// Condition expressions may join attribute_not_exists(path) and equality terms with AND.
type DynamoDB struct {
	Server *httptest.Server

	mutex             sync.Mutex
	tables            map[string]map[string]dynamoItem
	conditionFailures int
}

func NewDynamoDB() *DynamoDB {
	db := &DynamoDB{
		tables: make(map[string]map[string]dynamoItem),
	}

	db.Server = httptest.NewServer(http.HandlerFunc(db.handle))
	return db
}

func (d *DynamoDB) Endpoint() string {
	return d.Server.URL
}

func (d *DynamoDB) ConditionFailures() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.conditionFailures
}

func (d *DynamoDB) Close() {
	d.Server.Close()
}

func (d *DynamoDB) handle(w http.ResponseWriter, r *http.Request) {
	var input dynamoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeDynamoError(w, "SerializationException", err.Error())
		return
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	switch strings.TrimPrefix(r.Header.Get("X-Amz-Target"), dynamoTargetPrefix) {
	case "CreateTable":
		d.createTable(w, input)
	case "GetItem":
		d.getItem(w, input)
	case "PutItem":
		d.putItem(w, input)
	default:
		writeDynamoError(w, "UnknownOperationException", "unsupported operation")
	}
}

func (d *DynamoDB) createTable(w http.ResponseWriter, input dynamoInput) {
	if _, ok := d.tables[input.TableName]; ok {
		writeDynamoError(w, "ResourceInUseException", "table already exists")
		return
	}

	d.tables[input.TableName] = make(map[string]dynamoItem)
	writeDynamoResponse(w, map[string]interface{}{
		"TableDescription": map[string]interface{}{
			"TableName":   input.TableName,
			"TableStatus": "ACTIVE",
		},
	})
}

func (d *DynamoDB) getItem(w http.ResponseWriter, input dynamoInput) {
	table, ok := d.tables[input.TableName]
	if !ok {
		writeDynamoError(w, "ResourceNotFoundException", "table not found")
		return
	}

	item, ok := table[itemID(input.Key)]
	if !ok {
		writeDynamoResponse(w, map[string]interface{}{})
		return
	}

	writeDynamoResponse(w, map[string]interface{}{"Item": item})
}

func (d *DynamoDB) putItem(w http.ResponseWriter, input dynamoInput) {
	table, ok := d.tables[input.TableName]
	if !ok {
		writeDynamoError(w, "ResourceNotFoundException", "table not found")
		return
	}

	id := itemID(input.Item)
	if id == "" {
		writeDynamoError(w, "ValidationException", "item has no string id")
		return
	}

	holds, err := conditionHolds(input, table[id])
	if err != nil {
		writeDynamoError(w, "ValidationException", err.Error())
		return
	}
	if !holds {
		d.conditionFailures++
		writeDynamoError(w, "ConditionalCheckFailedException", "The conditional request failed")
		return
	}

	table[id] = input.Item
	writeDynamoResponse(w, map[string]interface{}{})
}

func conditionHolds(input dynamoInput, current dynamoItem) (bool, error) {
	if input.ConditionExpression == "" {
		return true, nil
	}

	resolve := func(name string) string {
		if resolved, ok := input.ExpressionAttributeNames[name]; ok {
			return resolved
		}
		return name
	}

	for _, term := range strings.Split(input.ConditionExpression, " AND ") {
		term = strings.TrimSpace(term)

		if strings.HasPrefix(term, "attribute_not_exists(") && strings.HasSuffix(term, ")") {
			attribute := resolve(strings.TrimSuffix(strings.TrimPrefix(term, "attribute_not_exists("), ")"))
			if _, ok := current[attribute]; ok {
				return false, nil
			}
			continue
		}

		sides := strings.SplitN(term, " = ", 2)
		if len(sides) != 2 {
			return false, fmt.Errorf("unsupported condition %q", term)
		}

		expected, ok := input.ExpressionAttributeValues[strings.TrimSpace(sides[1])]
		if !ok {
			return false, fmt.Errorf("missing value for %q", sides[1])
		}

		stored, ok := current[resolve(strings.TrimSpace(sides[0]))]
		if !ok || !reflect.DeepEqual(stored, expected) {
			return false, nil
		}
	}

	return true, nil
}

func itemID(item dynamoItem) string {
	attribute, ok := item["id"].(map[string]interface{})
	if !ok {
		return ""
	}

	id, _ := attribute["S"].(string)
	return id
}

func writeDynamoResponse(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/x-amz-json-1.0")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(body)
}

func writeDynamoError(w http.ResponseWriter, code string, message string) {
	w.Header().Set("Content-Type", "application/x-amz-json-1.0")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"__type":  "com.amazonaws.dynamodb.v20120810#" + code,
		"message": message,
	})
}
