// Package entity 定义领域实体
package entity

import "time"

// NotificationType 通知类型
type NotificationType string

const (
	NotificationTypeComment NotificationType = "comment"
	NotificationTypeReply   NotificationType = "reply"
	NotificationTypeLike    NotificationType = "like"
	NotificationTypeSystem  NotificationType = "system"
)

// Notification 通知实体
type Notification struct {
	ID          string           `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipientID string           `json:"recipient_id" gorm:"type:uuid;index;not null"`
	ActorID     string           `json:"actor_id,omitempty" gorm:"type:uuid"`
	Type        NotificationType `json:"type" gorm:"type:varchar(20);not null"`
	PostID      string           `json:"post_id,omitempty" gorm:"type:uuid"`
	CommentID   string           `json:"comment_id,omitempty" gorm:"type:uuid"`
	Message     string           `json:"message" gorm:"type:text;not null"`
	Read        bool             `json:"read" gorm:"default:false"`
	CreatedAt   time.Time        `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (Notification) TableName() string {
	return "notifications"
}
