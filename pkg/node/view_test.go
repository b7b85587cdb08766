package node

import (
	"errors"
	"reflect"
	"testing"
)

var storeJSON = []byte(`{
    "store": {
        "books": [
            {"title": "X", "price": 12.5},
            {"title": "Y", "price": 15.99}
        ],
        "promo": null,
        "open": true
    }
}`)

func TestParseView(t *testing.T) {
	if _, err := ParseView([]byte(`{"a": 1`)); !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("ParseView() error = %v, want ErrInvalidDocument", err)
	}

	v, err := ParseView(storeJSON)
	if err != nil {
		t.Fatalf("ParseView() unexpected error %v", err)
	}

	if v.Kind() != Object {
		t.Errorf("Kind() of document root = %v, want %v", v.Kind(), Object)
	}
}

func TestView_Kind(t *testing.T) {
	root, err := ParseView(storeJSON)
	if err != nil {
		t.Fatalf("ParseView() unexpected error %v", err)
	}

	store, _ := root.Property("store")
	books, _ := store.Property("books")
	first, _ := books.Element(0)
	title, _ := first.Property("title")
	price, _ := first.Property("price")
	promo, _ := store.Property("promo")
	open, _ := store.Property("open")

	tests := []struct {
		name string
		n    Node
		want Kind
	}{
		{name: "object", n: store, want: Object},
		{name: "array", n: books, want: Array},
		{name: "string", n: title, want: String},
		{name: "number", n: price, want: Number},
		{name: "null", n: promo, want: Null},
		{name: "boolean", n: open, want: Boolean},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.n.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestView_Property(t *testing.T) {
	root, _ := ParseView(storeJSON)
	store, ok := root.Property("store")
	if !ok {
		t.Fatalf("Property(store) not found")
	}

	if _, ok := store.Property("bicycle"); ok {
		t.Errorf("Property() reported missing property as found")
	}

	books, _ := store.Property("books")
	if _, ok := books.Property("title"); ok {
		t.Errorf("Property() on array node should report not found")
	}
}

func TestView_Element(t *testing.T) {
	root, _ := ParseView(storeJSON)
	store, _ := root.Property("store")
	books, _ := store.Property("books")

	if books.Len() != 2 {
		t.Errorf("Len() = %d, want 2", books.Len())
	}

	if _, ok := books.Element(2); ok {
		t.Errorf("Element() out of range index reported as found")
	}

	if _, ok := books.Element(-1); ok {
		t.Errorf("Element() negative index reported as found, adapter exposes raw access only")
	}

	if _, ok := store.Element(0); ok {
		t.Errorf("Element() on object node should report not found")
	}

	second, ok := books.Element(1)
	if !ok {
		t.Fatalf("Element(1) not found")
	}

	title, _ := second.Property("title")
	if title.Value() != "Y" {
		t.Errorf("Value() = %v, want Y", title.Value())
	}
}

func TestView_Raw(t *testing.T) {
	root, _ := ParseView(storeJSON)
	store, _ := root.Property("store")
	books, _ := store.Property("books")
	first, _ := books.Element(0)

	raw, err := first.Raw()
	if err != nil {
		t.Fatalf("Raw() unexpected error %v", err)
	}

	if !reflect.DeepEqual([]byte(`{"title": "X", "price": 12.5}`), raw) {
		t.Errorf("Raw() = %s, want original document slice", raw)
	}
}
