package entity

type SavedPick struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	GameType     GameType `gorm:"index;size:32"`
	Numbers      Array[int]
	Clovers      Array[int]
	LuckyMonth   string
	FavoriteTeam string
	Label        string `gorm:"index"`
	Notes        string
	Favorite     bool

	Checked             bool
	LastMatchCount      int
	LastCheckedSequence int64
	IsPrizeWorthy       bool
}

type PickGroup struct {
	Base

	UserID   string   `gorm:"uniqueIndex:idx_pick_group_name;size:64"`
	GameType GameType `gorm:"uniqueIndex:idx_pick_group_name;size:32"`
	Name     string   `gorm:"uniqueIndex:idx_pick_group_name;size:128"`
}

type MatchRecord struct {
	SnowFlakeBase

	PickID         string `gorm:"uniqueIndex:idx_match_pick_sequence;size:64"`
	SequenceNumber int64  `gorm:"uniqueIndex:idx_match_pick_sequence"`
	MatchCount     int
	IsPrizeWorthy  bool
}
