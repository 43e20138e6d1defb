package team_dto

import "github.com/Lovkumawat/Versal-Pulse/internal/entity"

type MemberResponse struct {
	Member        *entity.MemberEntity `json:"member"`
	Notifications []int                `json:"notifications,omitempty"`
}

// TaskResponse is the reply of every task mutation. Notifications lists the
// ids of the notifications the operation fanned out, in emission order.
type TaskResponse struct {
	MemberID      int                `json:"member_id"`
	Task          *entity.TaskEntity `json:"task"`
	Notifications []int              `json:"notifications,omitempty"`
}

type MemberListResponse struct {
	Members      []*entity.MemberEntity `json:"members"`
	StatusFilter string                 `json:"status_filter"`
	SortBy       string                 `json:"sort_by"`
}

type TeamViewResponse struct {
	StatusFilter string `json:"status_filter"`
	SortBy       string `json:"sort_by"`
}

type CommentResponse struct {
	MemberID      int                   `json:"member_id"`
	TaskID        int                   `json:"task_id"`
	Comment       *entity.CommentEntity `json:"comment"`
	Notifications []int                 `json:"notifications,omitempty"`
}
