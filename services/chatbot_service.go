package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/pkg/listing"
	"github.com/quark1412/FoodyRush-sub000/repository"
)

// ChatbotService answers the storefront chat widget. It is a thin intent
// classifier: a message either tracks an order, searches products, or gets
// the fallback answer. Transcripts are not persisted.
type ChatbotService struct {
	productRepo *repository.ProductRepository
	orderRepo   *repository.OrderRepository
}

func NewChatbotService(productRepo *repository.ProductRepository, orderRepo *repository.OrderRepository) *ChatbotService {
	return &ChatbotService{productRepo: productRepo, orderRepo: orderRepo}
}

const maxBotProducts = 5

type TrackingSummary struct {
	OrderID              uint      `json:"orderId"`
	Status               string    `json:"status"`
	DeliveryAddress      string    `json:"deliveryAddress"`
	ExpectedDeliveryDate time.Time `json:"expectedDeliveryDate"`
}

type BotReply struct {
	Message  string           `json:"message"`
	Products []entity.Product `json:"products,omitempty"`
	Tracking *TrackingSummary `json:"tracking,omitempty"`
}

type botIntent int

const (
	intentFallback botIntent = iota
	intentTrackOrder
	intentSearchProduct
)

var orderIDPattern = regexp.MustCompile(`\d+`)

var trackKeywords = []string{"đơn hàng", "đơn của tôi", "theo dõi", "tracking", "order"}
var searchKeywords = []string{"tìm", "mua", "có bán", "search", "find", "menu", "món"}

// classifyIntent decides what the message asks for. Tracking wins when an
// order keyword appears together with a number.
func classifyIntent(message string) (botIntent, string) {
	lower := strings.ToLower(strings.TrimSpace(message))

	for _, kw := range trackKeywords {
		if strings.Contains(lower, kw) && orderIDPattern.MatchString(lower) {
			return intentTrackOrder, orderIDPattern.FindString(lower)
		}
	}
	for _, kw := range searchKeywords {
		if idx := strings.Index(lower, kw); idx >= 0 {
			term := strings.TrimSpace(lower[idx+len(kw):])
			return intentSearchProduct, term
		}
	}
	return intentFallback, ""
}

// Ask produces the structured bot reply for one user message.
func (s *ChatbotService) Ask(userID uint, message string) (*BotReply, error) {
	intent, arg := classifyIntent(message)

	switch intent {
	case intentTrackOrder:
		return s.trackOrder(userID, arg)
	case intentSearchProduct:
		return s.searchProducts(arg)
	default:
		return &BotReply{
			Message: "Xin chào! Bạn có thể hỏi tôi về món ăn (ví dụ: \"tìm bánh mì\") hoặc theo dõi đơn hàng (ví dụ: \"đơn hàng 12\").",
		}, nil
	}
}

func (s *ChatbotService) trackOrder(userID uint, rawID string) (*BotReply, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return &BotReply{Message: "Tôi không tìm thấy mã đơn hàng trong tin nhắn của bạn."}, nil
	}

	order, err := s.orderRepo.FindByIDAndUser(uint(id), userID)
	if err != nil {
		return &BotReply{Message: fmt.Sprintf("Không tìm thấy đơn hàng #%d của bạn.", id)}, nil
	}

	summary := &TrackingSummary{
		OrderID:              order.ID,
		Status:               order.CurrentStatus(),
		ExpectedDeliveryDate: order.ExpectedDeliveryDate,
	}
	if n := len(order.DeliveryInfo); n > 0 {
		summary.DeliveryAddress = order.DeliveryInfo[n-1].DeliveryAddress
	}
	return &BotReply{
		Message:  fmt.Sprintf("Đơn hàng #%d hiện đang ở trạng thái: %s.", order.ID, order.CurrentStatus()),
		Tracking: summary,
	}, nil
}

func (s *ChatbotService) searchProducts(term string) (*BotReply, error) {
	var products []entity.Product
	if err := s.productRepo.FindAllActive(&products); err != nil {
		return nil, err
	}

	matches := listing.Filter(products, func(p entity.Product) bool {
		return listing.MatchSubstring(p.Name, term)
	})
	if len(matches) > maxBotProducts {
		matches = matches[:maxBotProducts]
	}
	if len(matches) == 0 {
		return &BotReply{Message: fmt.Sprintf("Rất tiếc, không tìm thấy món nào khớp với \"%s\".", term)}, nil
	}

	return &BotReply{
		Message:  fmt.Sprintf("Tôi tìm thấy %d món phù hợp:", len(matches)),
		Products: matches,
	}, nil
}
