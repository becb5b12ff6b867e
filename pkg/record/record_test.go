// ABOUTME: Shared fixtures for record tests
// ABOUTME: Fake entities and a fixed environment snapshot

package record

import (
	"time"
)

type testEntity struct {
	class string
	size  int64
}

func (e *testEntity) ClassName() string { return e.class }
func (e *testEntity) SizeOf() int64     { return e.size }

type testCollection struct {
	testEntity
	members map[string]Entity
}

func (c *testCollection) Members() map[string]Entity { return c.members }

// testEnv returns a fixed environment snapshot: Friday, February 14th
// 2020, 08:30:15 UTC, user jdoe, a small stable host.
func testEnv() *StaticEnviron {
	return &StaticEnviron{
		User:  "jdoe",
		Clock: time.Date(2020, time.February, 14, 8, 30, 15, 0, time.UTC),
		HostInfo: HostInfo{
			System:    "linux",
			Node:      "workbench",
			Release:   "5.15.0",
			Version:   "22.04",
			Machine:   "x86_64",
			Processor: "GenuineIntel",
		},
		MemInfo: MemoryInfo{
			Total:       16 * 1024 * 1024 * 1024,
			Available:   8 * 1024 * 1024 * 1024,
			Used:        4 * 1024 * 1024 * 1024,
			UsedPercent: 25.0,
		},
		Physical: 4,
		Logical:  8,
		Files:    map[string]FileStat{},
	}
}
