package dbclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"students/internal/domain"
)

// mongoConnector implements Connector for MongoDB.
type mongoConnector struct {
	client *mongo.Client
	dbName string
}

// mongoQuery is the JSON form of a configured MongoDB query. String values
// of the form "$1", "$2", ... in filter and pipeline are replaced by the
// positional arguments.
type mongoQuery struct {
	Collection string         `json:"collection"`
	Operation  string         `json:"operation,omitempty"` // find (default) or aggregate
	Filter     map[string]any `json:"filter,omitempty"`
	Projection map[string]any `json:"projection,omitempty"`
	Sort       map[string]any `json:"sort,omitempty"`
	Pipeline   []any          `json:"pipeline,omitempty"`
}

var placeholder = regexp.MustCompile(`^\$([1-9][0-9]*)$`)

func buildMongoURI(conn *domain.DatabaseConnection, password string) string {
	if strings.HasPrefix(conn.Host, "mongodb+srv://") || strings.HasPrefix(conn.Host, "mongodb://") {
		uri := conn.Host
		if password != "" {
			uri = strings.ReplaceAll(uri, "<password>", password)
			uri = strings.ReplaceAll(uri, "<db_password>", password)
		}
		return uri
	}

	port := conn.Port
	if port == 0 {
		port = 27017
	}
	var uri string
	if conn.Username != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%d", conn.Username, password, conn.Host, port)
	} else {
		uri = fmt.Sprintf("mongodb://%s:%d", conn.Host, port)
	}

	// authSource, replicaSet, etc.
	if extras, keys := extraParams(conn); len(keys) > 0 {
		params := make([]string, 0, len(keys))
		for _, k := range keys {
			params = append(params, k+"="+extras[k])
		}
		uri += "?" + strings.Join(params, "&")
	}
	return uri
}

func newMongoConnector(conn *domain.DatabaseConnection, password string) (*mongoConnector, error) {
	uri := buildMongoURI(conn, password)
	dbName := conn.Database
	if dbName == "" {
		dbName = "students"
	}

	logURI := uri
	if password != "" {
		logURI = strings.ReplaceAll(logURI, password, "***")
	}
	log.Printf("[MONGO] Connecting with URI: %s (database %s)", logURI, dbName)

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		log.Printf("[MONGO] Connect failed: %v", err)
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return &mongoConnector{client: client, dbName: dbName}, nil
}

// parseMongoQuery decodes query and binds args into its placeholders.
func parseMongoQuery(query string, args []any) (mongoQuery, error) {
	var mq mongoQuery
	if err := json.Unmarshal([]byte(query), &mq); err != nil {
		return mq, fmt.Errorf("invalid query JSON: %w", err)
	}
	if mq.Collection == "" {
		return mq, fmt.Errorf("query must specify 'collection'")
	}
	switch mq.Operation {
	case "":
		mq.Operation = "find"
	case "find", "aggregate":
	default:
		return mq, fmt.Errorf("unsupported operation: %s", mq.Operation)
	}

	filter, err := bindArgs(mq.Filter, args)
	if err != nil {
		return mq, err
	}
	mq.Filter, _ = filter.(map[string]any)
	pipeline, err := bindArgs(mq.Pipeline, args)
	if err != nil {
		return mq, err
	}
	mq.Pipeline, _ = pipeline.([]any)

	mq.Filter = unmarshalEJSON(mq.Filter)
	mq.Projection = unmarshalEJSON(mq.Projection)
	mq.Sort = unmarshalEJSON(mq.Sort)
	return mq, nil
}

// bindArgs walks v and replaces every "$n" string with args[n-1].
func bindArgs(v any, args []any) (any, error) {
	switch val := v.(type) {
	case string:
		m := placeholder.FindStringSubmatch(val)
		if m == nil {
			return val, nil
		}
		n, _ := strconv.Atoi(m[1])
		if n > len(args) {
			return nil, fmt.Errorf("placeholder %s has no argument", val)
		}
		return args[n-1], nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			bound, err := bindArgs(item, args)
			if err != nil {
				return nil, err
			}
			out[k] = bound
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			bound, err := bindArgs(item, args)
			if err != nil {
				return nil, err
			}
			out[i] = bound
		}
		return out, nil
	default:
		return v, nil
	}
}

// unmarshalEJSON re-encodes a map[string]any field and uses bson.UnmarshalExtJSON
// to convert MongoDB Extended JSON types ($oid, $date, $numberLong, etc.) to BSON.
func unmarshalEJSON(field map[string]any) map[string]any {
	if field == nil {
		return nil
	}
	raw, err := json.Marshal(field)
	if err != nil {
		return field
	}
	var doc bson.D
	if err := bson.UnmarshalExtJSON(raw, false, &doc); err != nil {
		log.Printf("[MONGO] EJSON parse warning: %v", err)
		return field
	}
	result := make(map[string]any, len(doc))
	for _, elem := range doc {
		result[elem.Key] = elem.Value
	}
	return result
}

func (m *mongoConnector) TestConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

func (m *mongoConnector) Query(ctx context.Context, query string, args ...any) ([]domain.RawRecord, error) {
	mq, err := parseMongoQuery(query, args)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	coll := m.client.Database(m.dbName).Collection(mq.Collection)

	var cursor *mongo.Cursor
	switch mq.Operation {
	case "aggregate":
		pipeline := mq.Pipeline
		if pipeline == nil {
			pipeline = []any{}
		}
		cursor, err = coll.Aggregate(ctx, pipeline)
	default:
		opts := options.Find()
		if mq.Projection != nil {
			opts.SetProjection(mq.Projection)
		}
		if mq.Sort != nil {
			opts.SetSort(mq.Sort)
		}
		filter := mq.Filter
		if filter == nil {
			filter = map[string]any{}
		}
		cursor, err = coll.Find(ctx, filter, opts)
	}
	if err != nil {
		log.Printf("[MONGO] %s error: %v", mq.Operation, err)
		return nil, fmt.Errorf("%s: %w", mq.Operation, err)
	}
	defer cursor.Close(ctx)

	var records []domain.RawRecord
	for cursor.Next(ctx) {
		var doc bson.D
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		records = append(records, documentRecord(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return records, nil
}

// documentRecord flattens the top-level fields of doc into a RawRecord.
func documentRecord(doc bson.D) domain.RawRecord {
	record := make(domain.RawRecord, len(doc))
	for _, elem := range doc {
		record[elem.Key] = formatBSONValue(elem.Value)
	}
	return record
}

func formatBSONValue(v any) null.String {
	switch val := v.(type) {
	case nil, bson.Null, bson.Undefined:
		return null.String{}
	case bson.ObjectID:
		return null.StringFrom(val.Hex())
	case bson.DateTime:
		return null.StringFrom(formatTime(val.Time().UTC()))
	case bson.Decimal128:
		return null.StringFrom(val.String())
	case int32:
		return null.StringFrom(strconv.FormatInt(int64(val), 10))
	default:
		return formatValue(val)
	}
}

func (m *mongoConnector) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
