package model

type PickGroup struct {
	ID        string `json:"id"`
	GameType  string `json:"game_type"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type GetListGroupRequest struct {
	GameType string `json:"game_type" form:"game_type"`
}

type GetListGroupResponse struct {
	Groups []PickGroup `json:"groups"`
}

type CreateGroupRequest struct {
	GameType string `json:"game_type"`
	Name     string `json:"name"`
}

type CreateGroupResponse struct {
	Group PickGroup `json:"group"`
}

type RenameGroupRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RenameGroupResponse struct{}

type DeleteGroupRequest struct {
	ID string `json:"id"`
}

type DeleteGroupResponse struct{}
