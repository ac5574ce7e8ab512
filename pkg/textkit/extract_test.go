package textkit

import (
	"reflect"
	"sort"
	"testing"
)

func TestExtract(t *testing.T) {
	t.Run("Emails", func(t *testing.T) {
		result, err := Extract("Contact a@b.com or c@d.org, or a@b.com again.", "emails")
		if err != nil {
			t.Fatalf("Extract() failed: %v", err)
		}

		got := append([]string(nil), result.Emails...)
		sort.Strings(got)
		want := []string{"a@b.com", "c@d.org"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Emails = %v, want %v", got, want)
		}
		if result.Total() != 2 {
			t.Errorf("Total() = %d, want 2", result.Total())
		}
	})

	t.Run("URLs", func(t *testing.T) {
		result, err := Extract("See https://example.com/path and http://other.net today", "urls")
		if err != nil {
			t.Fatalf("Extract() failed: %v", err)
		}
		if len(result.URLs) != 2 {
			t.Errorf("Expected 2 URLs, got %v", result.URLs)
		}
	})

	t.Run("PhonesNormalizedWithDashes", func(t *testing.T) {
		result, err := Extract("Call (555) 123-4567 now", "phones")
		if err != nil {
			t.Fatalf("Extract() failed: %v", err)
		}

		found := false
		for _, phone := range result.Phones {
			if phone == "555-123-4567" {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected normalized phone 555-123-4567 in %v", result.Phones)
		}
	})

	t.Run("All", func(t *testing.T) {
		result, err := Extract("a@b.com https://example.com 555-123-4567", "all")
		if err != nil {
			t.Fatalf("Extract() failed: %v", err)
		}
		if len(result.Emails) == 0 || len(result.URLs) == 0 || len(result.Phones) == 0 {
			t.Errorf("Expected matches in all categories, got %+v", result)
		}
	})

	t.Run("DataTypeIsCaseInsensitive", func(t *testing.T) {
		result, err := Extract("a@b.com", "EMAILS")
		if err != nil {
			t.Fatalf("Extract() failed: %v", err)
		}
		if len(result.Emails) != 1 {
			t.Errorf("Expected 1 email, got %v", result.Emails)
		}
	})

	t.Run("NoMatches", func(t *testing.T) {
		_, err := Extract("nothing to see here", "emails")
		if !IsKind(err, KindNoMatches) {
			t.Errorf("Expected no matches error, got %v", err)
		}
		if err.Error() != "No emails found in the text." {
			t.Errorf("Unexpected error message: %q", err.Error())
		}
	})

	t.Run("UnknownDataType", func(t *testing.T) {
		_, err := Extract("a@b.com", "hashtags")
		if !IsKind(err, KindUnknownSelector) {
			t.Errorf("Expected unknown selector error, got %v", err)
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		_, err := Extract("  ", "all")
		if !IsKind(err, KindEmptyInput) {
			t.Errorf("Expected empty input error, got %v", err)
		}
	})
}

func TestKindOf(t *testing.T) {
	_, err := Extract("", "emails")
	kind, ok := KindOf(err)
	if !ok {
		t.Fatal("KindOf() did not recognize a textkit error")
	}
	if kind != KindEmptyInput {
		t.Errorf("KindOf() = %v, want %v", kind, KindEmptyInput)
	}

	if _, ok := KindOf(nil); ok {
		t.Error("KindOf(nil) reported a textkit error")
	}
}
