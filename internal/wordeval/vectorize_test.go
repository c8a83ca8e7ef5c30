package wordeval

import (
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/shword/internal/value"
)

func TestVectorizeScalar(t *testing.T) {
	got, err := vectorize(value.Str{S: "ab"}, func(s string) (string, error) {
		return strings.ToUpper(s), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(value.Str).S != "AB" {
		t.Errorf("got %+v, want AB", got)
	}
}

func TestVectorizeUndefTreatsAsEmptyString(t *testing.T) {
	got, err := vectorize(value.Undef{}, func(s string) (string, error) {
		return s + "x", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(value.Str).S != "x" {
		t.Errorf("got %+v, want x", got)
	}
}

func TestVectorizeArrayPreservesHolesAndOrder(t *testing.T) {
	arr := value.MaybeStrArray{Entries: []*string{strPtr("a"), nil, strPtr("b")}}
	got, err := vectorize(arr, func(s string) (string, error) {
		return strings.ToUpper(s), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result := got.(value.MaybeStrArray)
	if len(result.Entries) != 3 || result.Entries[1] != nil {
		t.Fatalf("got %+v, want hole preserved at index 1", result.Entries)
	}
	if *result.Entries[0] != "A" || *result.Entries[2] != "B" {
		t.Errorf("got %+v", result.Entries)
	}
}

func TestVectorizeAssocArrayAppliesToValues(t *testing.T) {
	arr := value.NewAssocArray([]string{"k"}, map[string]string{"k": "v"})
	got, err := vectorize(arr, func(s string) (string, error) {
		return strings.ToUpper(s), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result := got.(value.AssocArray)
	if result.Values["k"] != "V" {
		t.Errorf("got %+v, want V", result.Values)
	}
}

func TestVectorizePropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	_, err := vectorize(value.Str{S: "x"}, func(s string) (string, error) {
		return "", wantErr
	})
	if err != wantErr {
		t.Errorf("got %v, want %v", err, wantErr)
	}
}
