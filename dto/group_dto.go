package dto

type GroupInput struct {
	GroupName string `json:"groupName"`
}

type GroupResponse struct {
	Message   string   `json:"message,omitempty"`
	GroupID   uint     `json:"groupId"`
	GroupName string   `json:"groupName"`
	Members   []string `json:"members"`
	Budget    int      `json:"budget"`
}
