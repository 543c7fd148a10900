package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/events"
)

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(config config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: config.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("序列化事件失败", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("发送 Kafka 消息",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})
	if err != nil {
		p.logger.Error("写入 Kafka 消息失败", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Kafka 消息发送成功", zap.String("topic", topic))
	}
	return err
}

// SendContentPendingModerationEvent 发送内容待审核事件
// - 意图: 帖子/问题创建或正文更新后，把内容推给审核服务
func (p *KafkaProducer) SendContentPendingModerationEvent(ctx context.Context, subject events.ContentData) error {
	// brokers 未配置时生产者为 nil，事件静默丢弃。
	if p == nil {
		return nil
	}
	event := events.ContentPendingModerationEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Subject:   subject,
	}
	return p.SendEvent(ctx, p.topics.ContentPendingModeration, event)
}

// SendContentDeletedEvent 发送内容删除事件，通知下游清理派生数据
func (p *KafkaProducer) SendContentDeletedEvent(ctx context.Context, subjectType enums.SubjectType, subjectID uint64) error {
	if p == nil {
		return nil
	}
	event := events.ContentDeletedEvent{
		EventID:     uuid.New().String(),
		Timestamp:   time.Now(),
		SubjectType: subjectType,
		SubjectID:   subjectID,
	}
	return p.SendEvent(ctx, p.topics.ContentDeleted, event)
}

// Close 关闭底层 writer
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
