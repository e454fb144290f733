package batch

import (
	"errors"
	"fmt"
	"testing"
)

func TestRunIsolatesFailures(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	result := Run(ids, func(id string) error {
		if id == "b" || id == "d" {
			return errors.New("broken " + id)
		}
		return nil
	})

	if result.Total != 4 || result.Completed != 4 {
		t.Errorf("total/completed = %d/%d, want 4/4", result.Total, result.Completed)
	}
	if result.Succeeded != 2 || result.Failed != 2 {
		t.Errorf("succeeded/failed = %d/%d, want 2/2", result.Succeeded, result.Failed)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("errors = %v", result.Errors)
	}
	if result.Errors[0].TargetID != "b" || result.Errors[1].TargetID != "d" {
		t.Errorf("error order not stable: %v", result.Errors)
	}
	if result.Errors[0].Message != "broken b" {
		t.Errorf("message = %q", result.Errors[0].Message)
	}
}

func TestRunEmpty(t *testing.T) {
	result := Run(nil, func(string) error { return nil })
	if result.Total != 0 || result.Completed != 0 || len(result.Errors) != 0 {
		t.Errorf("unexpected result for empty batch: %+v", result)
	}
}

func TestRunOrderReproducible(t *testing.T) {
	ids := []string{"3", "1", "2"}
	var first, second []string
	op := func(collect *[]string) func(string) error {
		return func(id string) error {
			*collect = append(*collect, id)
			return fmt.Errorf("fail %s", id)
		}
	}
	Run(ids, op(&first))
	Run(ids, op(&second))
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("iteration order differs: %v vs %v", first, second)
		}
	}
}
