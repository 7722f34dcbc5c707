package service

import (
	"fmt"
	"testing"
)

func TestScanAssetRefsDeduplicates(t *testing.T) {
	content := "a http://blog.test/image/9/3 b http://blog.test/image/9/5 " +
		"c http://blog.test/image/9/5 d http://blog.test/image/9/7"

	ids := ScanAssetRefs(content, 9, "blog.test")
	if len(ids) != 3 {
		t.Fatalf("expected 3 distinct ids, got %v", ids)
	}

	seen := map[uint]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d in %v", id, ids)
		}
		seen[id] = true
	}
	for _, want := range []uint{3, 5, 7} {
		if !seen[want] {
			t.Fatalf("missing id %d in %v", want, ids)
		}
	}
}

func TestScanAssetRefsEmptyContent(t *testing.T) {
	if ids := ScanAssetRefs("", 1, "blog.test"); len(ids) != 0 {
		t.Fatalf("expected no ids for empty content, got %v", ids)
	}
	if ids := ScanAssetRefs("no links here", 1, "blog.test"); len(ids) != 0 {
		t.Fatalf("expected no ids without links, got %v", ids)
	}
}

func TestScanAssetRefsIgnoresOtherOwners(t *testing.T) {
	content := "http://blog.test/image/2/10 http://blog.test/image/3/11"
	ids := ScanAssetRefs(content, 2, "blog.test")
	if len(ids) != 1 || ids[0] != 10 {
		t.Fatalf("expected only owner 2's asset, got %v", ids)
	}
}

func TestScanAssetRefsIgnoresOtherHosts(t *testing.T) {
	content := "http://elsewhere.test/image/1/10"
	if ids := ScanAssetRefs(content, 1, "blog.test"); len(ids) != 0 {
		t.Fatalf("expected no ids for a foreign host, got %v", ids)
	}
}

func TestScanAssetRefsHostWithPort(t *testing.T) {
	base := "localhost:8080"
	content := fmt.Sprintf("http://%s/image/1/42", base)
	ids := ScanAssetRefs(content, 1, base)
	if len(ids) != 1 || ids[0] != 42 {
		t.Fatalf("expected id 42, got %v", ids)
	}
}

func TestDiffRefs(t *testing.T) {
	removed, added := diffRefs([]uint{1, 2, 3, 4}, []uint{1, 3, 4, 6})
	if len(removed) != 1 || removed[0] != 2 {
		t.Fatalf("removed = %v, want [2]", removed)
	}
	if len(added) != 1 || added[0] != 6 {
		t.Fatalf("added = %v, want [6]", added)
	}

	removed, added = diffRefs(nil, []uint{5})
	if len(removed) != 0 || len(added) != 1 {
		t.Fatalf("nil old set: removed=%v added=%v", removed, added)
	}

	removed, added = diffRefs([]uint{5}, nil)
	if len(removed) != 1 || len(added) != 0 {
		t.Fatalf("nil new set: removed=%v added=%v", removed, added)
	}

	removed, added = diffRefs([]uint{5, 6}, []uint{5, 6})
	if len(removed) != 0 || len(added) != 0 {
		t.Fatalf("identical sets: removed=%v added=%v", removed, added)
	}
}
