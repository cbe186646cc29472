package client

type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type UserInfo struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginResponse struct {
	Token    string   `json:"token"`
	UserInfo UserInfo `json:"user_info"`
}

type createLearningRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type skillRequest struct {
	Topic string `json:"topic"`
}

type updateSkillRequest struct {
	OldTopic     string `json:"oldTopic"`
	UpdatedTopic string `json:"updatedTopic"`
}

type errorResponse struct {
	Message string `json:"message"`
}
