package rpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type sample struct {
	Name  string    `json:"name"`
	Count int       `json:"count"`
	When  time.Time `json:"when"`
	Tags  []string  `json:"tags,omitempty"`
}

func TestEncodeDecode(t *testing.T) {
	in := sample{
		Name:  "Moon",
		Count: 7,
		When:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Tags:  []string{"a", "b"},
	}
	s, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := s.Fields["name"].GetStringValue(); got != "Moon" {
		t.Errorf("name field = %q, want Moon", got)
	}
	if got := s.Fields["count"].GetNumberValue(); got != 7 {
		t.Errorf("count field = %v, want 7", got)
	}

	var out sample
	if err := Decode(s, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.Name != in.Name || out.Count != in.Count || !out.When.Equal(in.When) || len(out.Tags) != 2 {
		t.Errorf("Decode = %+v, want %+v", out, in)
	}
}

func TestEncode_NonObject(t *testing.T) {
	if _, err := Encode([]int{1, 2}); err == nil {
		t.Error("expected error encoding a JSON array")
	}
}

func TestDecode_Nil(t *testing.T) {
	var out sample
	if err := Decode(nil, &out); err != nil {
		t.Errorf("Decode(nil) = %v", err)
	}
}

func TestUnary(t *testing.T) {
	h := Unary("/test.v1.Svc/Echo", func(_ context.Context, req *sample) (*sample, error) {
		if req.Name == "" {
			return nil, status.Error(codes.InvalidArgument, "name is required")
		}
		req.Count++
		return req, nil
	})

	dec := func(name string) func(any) error {
		return func(m any) error {
			s, err := structpb.NewStruct(map[string]any{"name": name, "count": 1})
			if err != nil {
				return err
			}
			m.(*structpb.Struct).Fields = s.Fields
			return nil
		}
	}

	t.Run("Direct", func(t *testing.T) {
		resp, err := h(nil, context.Background(), dec("Sun"), nil)
		if err != nil {
			t.Fatalf("handler: %v", err)
		}
		if got := resp.(*structpb.Struct).Fields["count"].GetNumberValue(); got != 2 {
			t.Errorf("count = %v, want 2", got)
		}
	})

	t.Run("Interceptor", func(t *testing.T) {
		var seen string
		icpt := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
			seen = info.FullMethod
			return handler(ctx, req)
		}
		if _, err := h(nil, context.Background(), dec("Sun"), icpt); err != nil {
			t.Fatalf("handler: %v", err)
		}
		if seen != "/test.v1.Svc/Echo" {
			t.Errorf("FullMethod = %q", seen)
		}
	})

	t.Run("Error", func(t *testing.T) {
		_, err := h(nil, context.Background(), dec(""), nil)
		if status.Code(err) != codes.InvalidArgument {
			t.Errorf("code = %v, want InvalidArgument", status.Code(err))
		}
	})

	t.Run("DecodeFailure", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := h(nil, context.Background(), func(any) error { return boom }, nil)
		if !errors.Is(err, boom) {
			t.Errorf("err = %v, want boom", err)
		}
	})
}
