package store

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const idField = "_id"

var fieldNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// checkFilter rejects filters that cannot be expressed by every backend.
func checkFilter(filter Filter) error {
	for field, value := range filter {
		if !fieldNamePattern.MatchString(field) || field == idField {
			return fmt.Errorf("%w: field %q", ErrUnsupportedFilter, field)
		}
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%w: field %q must be compared with a string", ErrUnsupportedFilter, field)
		}
	}
	return nil
}

func checkSortKey(key *SortKey) error {
	if key == nil {
		return nil
	}
	if !fieldNamePattern.MatchString(key.Field) {
		return fmt.Errorf("%w: sort field %q", ErrUnsupportedFilter, key.Field)
	}
	if key.Direction != Ascending && key.Direction != Descending {
		return fmt.Errorf("%w: sort direction %d", ErrUnsupportedFilter, key.Direction)
	}
	return nil
}

// encodeExtJSON encodes doc with its bson tags as relaxed Extended JSON,
// dropping any _id: the SQL backends keep identifiers in their own column.
func encodeExtJSON(doc any) ([]byte, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	var d bson.D
	if err = bson.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	ext, err := bson.MarshalExtJSON(withoutID(d), false, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	return ext, nil
}

// decodeExtJSON decodes a stored Extended JSON document into out with id as
// its _id.
func decodeExtJSON(id string, ext []byte, out any) error {
	var d bson.D
	if err := bson.UnmarshalExtJSON(ext, false, &d); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return decodeWithID(append(bson.D{{Key: idField, Value: id}}, withoutID(d)...), out)
}

// decodeRaw decodes a document read from MongoDB into out, rendering its
// _id as text first.
func decodeRaw(raw bson.Raw, out any) error {
	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	for i, e := range d {
		if e.Key == idField {
			d[i].Value = idString(e.Value)
		}
	}

	return decodeWithID(d, out)
}

func decodeWithID(d bson.D, out any) error {
	raw, err := bson.Marshal(d)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	if err = bson.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	return nil
}

func withoutID(d bson.D) bson.D {
	fields := make(bson.D, 0, len(d))
	for _, e := range d {
		if e.Key != idField {
			fields = append(fields, e)
		}
	}
	return fields
}

// idString renders an identifier of any stored type as text.
func idString(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case bson.ObjectID:
		return v.Hex()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
