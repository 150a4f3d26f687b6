package maplabel

// CollisionGroup pairs a numeric group ID with a predicate deciding which
// prior CollisionIndex entries count as obstructions (spec.md §3, §4.1).
//
// spec.md §9 notes the predicate is "a simple equality on
// key.collisionGroupID"; rather than a closure, it is represented as an
// optional group ID to match against — nil means "match all", the
// cross-source-collisions-enabled case.
type CollisionGroup struct {
	ID          int
	GroupFilter *int // nil = no filter (every prior entry counts as an obstruction)
}

// Matches reports whether a key's collision group ID counts as an
// obstruction under this CollisionGroup's predicate.
func (g CollisionGroup) Matches(keyGroupID int) bool {
	if g.GroupFilter == nil {
		return true
	}
	return *g.GroupFilter == keyGroupID
}

// CollisionGroups assigns numeric group IDs to symbol sources and
// memoizes the assignment for the lifetime of one Placement (spec.md
// §4.1). It is deterministic per Placement and never evicts — per spec.md
// §9's note to use a direct hash map rather than a stringly-typed cache
// with eviction policy, since the memo only ever grows by one entry per
// distinct source seen this frame.
type CollisionGroups struct {
	crossSourceCollisions bool
	maxGroupID            int
	bySourceID            map[string]int
}

// NewCollisionGroups constructs a fresh CollisionGroups for one Placement.
func NewCollisionGroups(crossSourceCollisions bool) *CollisionGroups {
	return &CollisionGroups{
		crossSourceCollisions: crossSourceCollisions,
		bySourceID:            make(map[string]int),
	}
}

// Get returns the CollisionGroup for sourceID, assigning and memoizing a
// new group ID on first use when cross-source collisions are disabled
// (spec.md §4.1).
func (g *CollisionGroups) Get(sourceID string) CollisionGroup {
	if g.crossSourceCollisions {
		return CollisionGroup{ID: 0, GroupFilter: nil}
	}

	id, ok := g.bySourceID[sourceID]
	if !ok {
		g.maxGroupID++
		id = g.maxGroupID
		g.bySourceID[sourceID] = id
	}
	filter := id
	return CollisionGroup{ID: id, GroupFilter: &filter}
}
