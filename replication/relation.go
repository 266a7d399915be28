package replication

// RelationInfo describes one table as announced by a Relation message:
// its schema-qualified name and the declared order of its columns.
type RelationInfo struct {
	Schema  string
	Table   string
	Columns []string
}

// relationCache maps a replication rel_id to the RelationInfo last
// announced for it. It is rebuilt from scratch on every stream_once
// call and is never shared across goroutines, so it needs no locking.
type relationCache map[uint32]RelationInfo

func (c relationCache) upsert(id uint32, info RelationInfo) {
	c[id] = info
}

func (c relationCache) get(id uint32) (RelationInfo, bool) {
	info, ok := c[id]
	return info, ok
}
