package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"rosterfill/core/config"
	"rosterfill/core/match"
	"rosterfill/core/tabio"
)

func main() {
	if len(os.Args) != 5 {
		log.Fatalf("usage: %s REFERENCE TARGET REFERENCE_KEY TARGET_KEY", os.Args[0])
	}
	refPath, tgtPath := os.Args[1], os.Args[2]
	refKey, tgtKey := os.Args[3], os.Args[4]

	// Load config
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	// Test 1: load both files and dump their schemas
	fmt.Println("=== TEST 1: File Loading ===")
	reference, err := tabio.Load(refPath, cfg.Files)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Reference: %d rows x %d columns\n", reference.Len(), reference.Columns())
	fmt.Printf("Reference headers: %s\n", strings.Join(reference.Headers, ", "))
	if !reference.HasHeader(refKey) {
		fmt.Printf("WARNING: reference has no column %q\n", refKey)
	}

	target, err := tabio.Load(tgtPath, cfg.Files)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Target: %d rows x %d columns\n", target.Len(), target.Columns())
	fmt.Printf("Target headers: %s\n", strings.Join(target.Headers, ", "))
	if !target.HasHeader(tgtKey) {
		fmt.Printf("WARNING: target has no column %q\n", tgtKey)
	}

	// Test 2: lookup table stats
	fmt.Println("\n=== TEST 2: Lookup Table ===")
	lookup := match.BuildLookup(reference.Rows, refKey)
	keyed := 0
	for _, row := range reference.Rows {
		if strings.TrimSpace(row[refKey]) != "" {
			keyed++
		}
	}
	fmt.Printf("Rows with a non-empty key: %d of %d\n", keyed, reference.Len())
	fmt.Printf("Distinct keys: %d\n", len(lookup))
	fmt.Printf("Duplicate keys collapsed: %d\n", keyed-len(lookup))

	// Test 3: match rate without writing anything
	fmt.Println("\n=== TEST 3: Match Rate ===")
	matched := 0
	emptyKeys := 0
	var misses []string
	for _, row := range target.Rows {
		k := strings.TrimSpace(row[tgtKey])
		if k == "" {
			emptyKeys++
			continue
		}
		if _, ok := lookup[k]; ok {
			matched++
		} else if len(misses) < 5 {
			misses = append(misses, k)
		}
	}
	fmt.Printf("Target rows: %d\n", target.Len())
	fmt.Printf("Empty target keys: %d\n", emptyKeys)
	if target.Len() > 0 {
		fmt.Printf("Matched: %d (%.1f%%)\n", matched,
			float64(matched)*100/float64(target.Len()))
	} else {
		fmt.Println("Matched: 0 (target is empty)")
	}
	if len(misses) > 0 {
		fmt.Printf("Sample unmatched keys: %s\n", strings.Join(misses, ", "))
	}

	// Save detailed output
	output := map[string]interface{}{
		"reference_rows": reference.Len(),
		"target_rows":    target.Len(),
		"distinct_keys":  len(lookup),
		"matched":        matched,
		"empty_keys":     emptyKeys,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	os.WriteFile("debug_match.json", data, 0644)

	fmt.Println("\nDebug complete. Check debug_match.json for details.")
}
