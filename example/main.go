package main

import (
	"errors"
	"fmt"

	"github.com/xyproto/env/v2"
	"go.uber.org/zap"

	"github.com/theflywheel/probemap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	capacity := env.Int("PROBEMAP_CAPACITY", probemap.DefaultCapacity)
	m, err := probemap.NewWithCapacity[probemap.String, int](capacity, probemap.WithLogger(logger))
	if err != nil {
		logger.Fatal("failed to create map", zap.Error(err))
	}

	fmt.Printf("Map created with capacity %d\n", m.Cap())

	// Insert some data
	for i := 0; i < 10; i++ {
		if _, _, err := m.Set(probemap.String(fmt.Sprintf("key-%d", i)), i*100); err != nil {
			logger.Fatal("failed to insert", zap.Int("key", i), zap.Error(err))
		}
	}

	fmt.Printf("Inserted 10 key-value pairs, capacity now %d, load %.2f\n", m.Cap(), m.Load())

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		k := probemap.String(fmt.Sprintf("key-%d", i))
		value, err := m.Get(k)
		if errors.Is(err, probemap.ErrNotFound) {
			fmt.Printf("%s not found\n", k)
			continue
		}
		fmt.Printf("%s => %d\n", k, value)
	}

	// Update a value
	old, _, err := m.Set("key-2", 999)
	if err != nil {
		logger.Fatal("failed to update", zap.Error(err))
	}
	value, _ := m.Get("key-2")
	fmt.Printf("Updated key-2 from %d to %d\n", old, value)

	// Delete a value and show the tombstone it leaves
	removed, err := m.Delete("key-4")
	if err != nil {
		logger.Fatal("failed to delete", zap.Error(err))
	}
	tombstones := 0
	for _, slot := range m.Table() {
		if slot.IsTombstone() {
			tombstones++
		}
	}
	fmt.Printf("Deleted key-4 (was %d), %d live entries, %d tombstone(s)\n", removed, m.Len(), tombstones)

	fmt.Println("Example completed successfully")
}
