// Package entity 定义领域实体
package entity

import "time"

// AuditLog 管理操作审计日志
// 由 notify-worker 从审计事件流归档落库
type AuditLog struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ActorID      string    `json:"actor_id,omitempty" gorm:"type:uuid;index"`
	Action       string    `json:"action" gorm:"type:varchar(64);not null;index"`
	ResourceType string    `json:"resource_type" gorm:"type:varchar(32);not null"`
	ResourceID   string    `json:"resource_id,omitempty" gorm:"type:varchar(64)"`
	RequestID    string    `json:"request_id,omitempty" gorm:"type:varchar(64)"`
	TraceID      string    `json:"trace_id,omitempty" gorm:"type:varchar(64)"`
	IPAddress    string    `json:"ip_address,omitempty" gorm:"type:varchar(64)"`
	Detail       string    `json:"detail,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName 指定表名
func (AuditLog) TableName() string {
	return "audit_logs"
}
