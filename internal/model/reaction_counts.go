package model

// ReactionCounts 六类表态的聚合计数。
// 该结构是冗余聚合（缓存），权威口径始终以 user_reactions 集合重算为准。
type ReactionCounts struct {
	Like  int64 `bson:"like" json:"like"`
	Love  int64 `bson:"love" json:"love"`
	Laugh int64 `bson:"laugh" json:"laugh"`
	Wow   int64 `bson:"wow" json:"wow"`
	Sad   int64 `bson:"sad" json:"sad"`
	Angry int64 `bson:"angry" json:"angry"`
}

// Total 全部表态数之和
func (s ReactionCounts) Total() int64 {
	return s.Like + s.Love + s.Laugh + s.Wow + s.Sad + s.Angry
}
