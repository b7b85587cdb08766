package serializer

import (
	"reflect"
	"testing"
)

func TestJSON_Deserialize(t *testing.T) {
	type book struct {
		Title string  `json:"title"`
		Price float64 `json:"price"`
	}

	var b book
	if err := NewJSONFormatter().Deserialize([]byte(`{"title": "X", "price": 12.5}`), &b); err != nil {
		t.Fatalf("Deserialize() unexpected error %v", err)
	}

	if !reflect.DeepEqual(b, book{Title: "X", Price: 12.5}) {
		t.Errorf("Deserialize() got = %+v", b)
	}

	if err := NewJSONFormatter().Deserialize([]byte(`{"title":`), &b); err == nil {
		t.Errorf("Deserialize() of invalid JSON should return error")
	}
}

func TestYAML_Deserialize(t *testing.T) {
	type args struct {
		data []byte
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{name: "no data", args: args{data: nil}, wantErr: true},
		{name: "empty data", args: args{data: []byte("")}, wantErr: true},
		{name: "valid YAML", args: args{data: []byte("title: X\nprice: 12.5\n")}, wantErr: false},
		{name: "raw JSON node encoding", args: args{data: []byte(`{"title": "X", "price": 12.5}`)}, wantErr: false},
		{name: "unknown field in strict mode", args: args{data: []byte("title: X\nauthor: Y\n")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				Title string  `yaml:"title"`
				Price float64 `yaml:"price"`
			}
			if err := NewYAMLFormatter().Deserialize(tt.args.data, &v); (err != nil) != tt.wantErr {
				t.Errorf("Deserialize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	in := map[string]any{"a": "b"}

	jsonBytes, err := NewJSONFormatter().Serialize(in)
	if err != nil {
		t.Fatalf("Serialize() unexpected error %v", err)
	}

	var fromJSON map[string]any
	if err := NewJSONFormatter().Deserialize(jsonBytes, &fromJSON); err != nil {
		t.Fatalf("Deserialize() unexpected error %v", err)
	}

	if !reflect.DeepEqual(in, fromJSON) {
		t.Errorf("JSON round trip changed value: %v", fromJSON)
	}

	yamlBytes, err := NewYAMLFormatter().Serialize(in)
	if err != nil {
		t.Fatalf("Serialize() unexpected error %v", err)
	}

	var fromYAML map[string]any
	if err := NewYAMLFormatter().Deserialize(yamlBytes, &fromYAML); err != nil {
		t.Fatalf("Deserialize() unexpected error %v", err)
	}

	if !reflect.DeepEqual(in, fromYAML) {
		t.Errorf("YAML round trip changed value: %v", fromYAML)
	}
}
