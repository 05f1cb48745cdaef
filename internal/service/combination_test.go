package service

import (
	"reflect"
	"testing"
)

func TestCombineTwoLists(t *testing.T) {
	got := Combine([][]uint{{1, 2}, {10, 20}})
	want := [][]uint{{1, 10}, {1, 20}, {2, 10}, {2, 20}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("combine = %v, want %v", got, want)
	}
}

func TestCombineSingleList(t *testing.T) {
	got := Combine([][]uint{{7, 8, 9}})
	want := [][]uint{{7}, {8}, {9}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("combine = %v, want %v", got, want)
	}
}

func TestCombineEmptyInput(t *testing.T) {
	got := Combine(nil)
	if len(got) != 0 {
		t.Fatalf("combine of no lists should be empty, got %v", got)
	}
	got = Combine([][]uint{})
	if len(got) != 0 {
		t.Fatalf("combine of zero lists should be empty, got %v", got)
	}
}

func TestCombineThreeListsOrder(t *testing.T) {
	got := Combine([][]uint{{1}, {2, 3}, {4, 5}})
	want := [][]uint{{1, 2, 4}, {1, 2, 5}, {1, 3, 4}, {1, 3, 5}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("combine = %v, want %v", got, want)
	}
}

func TestCombineCountMultiplies(t *testing.T) {
	got := Combine([][]uint{{1, 2, 3}, {4, 5}, {6, 7, 8, 9}})
	if len(got) != 24 {
		t.Fatalf("expected 3*2*4=24 tuples, got %d", len(got))
	}
	for _, tuple := range got {
		if len(tuple) != 3 {
			t.Fatalf("every tuple should have one value per list, got %v", tuple)
		}
	}
}
