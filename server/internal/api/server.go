package api

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"learn-path/server/internal/config"
	"learn-path/server/internal/hf"
	"learn-path/server/internal/model"
	"learn-path/server/internal/pathgen"
	"learn-path/server/internal/responder"
	"learn-path/server/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// apologyMessage 聊天轮次内部异常时的兜底回复：聊天端点永远给出“某个回答”，
// 内部错误记日志、不重试。
const apologyMessage = "I apologize, but I encountered an error processing your message. Please try again or rephrase your question."

type Server struct {
	config    *config.Config
	store     session.Store
	responder *responder.Responder
	hfClient  *hf.Client
	generator *pathgen.Generator
	now       func() time.Time

	// WebSocket upgrader
	upgrader websocket.Upgrader
}

func NewServer(cfg *config.Config, store session.Store, resp *responder.Responder, hfClient *hf.Client, generator *pathgen.Generator) *Server {
	s := &Server{
		config:    cfg,
		store:     store,
		responder: resp,
		hfClient:  hfClient,
		generator: generator,
		now:       time.Now,
	}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			// 非浏览器客户端不带 Origin，直接放行。
			if origin == "" {
				return true
			}
			return s.originAllowed(origin)
		},
	}
	return s
}

func (s *Server) Routes() http.Handler {
	// Gin 统一承载中间件与路由，便于扩展日志/鉴权/限流等能力。
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), s.corsMiddleware())
	engine.GET("/healthz", s.handleHealthz)
	engine.POST("/api/generate-path", s.handleGeneratePath)
	engine.POST("/api/chat", s.handleChat)
	engine.POST("/api/sessions", s.handleCreateSession)
	engine.POST("/api/sessions/:id/chat", s.handleSessionChat)
	engine.GET("/api/sessions/:id/stream", s.handleSessionStream)
	return engine
}

// handleHealthz 返回服务健康状态。
func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type generatePathResponse struct {
	LearningPath    model.LearningPath `json:"learningPath"`
	Recommendations []string           `json:"recommendations,omitempty"`
}

// handleGeneratePath 处理无状态的路线图生成请求。
// 四个必填字段缺任意一个都返回 400，校验失败不会进入核心逻辑。
func (s *Server) handleGeneratePath(c *gin.Context) {
	var req model.LearningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if req.Goal == "" || req.CurrentLevel == "" || req.TimeAvailable == "" || req.LearningStyle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	path := s.hfClient.GenerateLearningPath(c.Request.Context(), req)
	c.JSON(http.StatusOK, generatePathResponse{
		LearningPath:    path,
		Recommendations: s.generator.PersonalizedRecommendations(req),
	})
}

type chatRequest struct {
	Message      string                     `json:"message"`
	Context      *model.ConversationContext `json:"context,omitempty"`
	LearningPath *model.LearningPath        `json:"learningPath,omitempty"`
}

type chatResponse struct {
	Response    string              `json:"response"`
	UpdatedPath *model.LearningPath `json:"updatedPath,omitempty"`
}

// handleChat 处理无状态的单轮聊天请求；updatedPath 只在消息触发了调整时出现。
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	convCtx := model.ConversationContext{}
	if req.Context != nil {
		convCtx = *req.Context
	}
	if req.LearningPath != nil {
		convCtx.Path = req.LearningPath
	}

	response, updatedPath := s.runTurn(c.Request.Context(), req.Message, convCtx)
	c.JSON(http.StatusOK, chatResponse{Response: response, UpdatedPath: updatedPath})
}

type createSessionResponse struct {
	SessionID    string             `json:"session_id"`
	LearningPath model.LearningPath `json:"learningPath"`
	Response     string             `json:"response"`
}

// handleCreateSession 从问卷创建会话：生成路线图、渲染首条助手消息并保存快照。
func (s *Server) handleCreateSession(c *gin.Context) {
	var req model.LearningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Goal == "" || req.CurrentLevel == "" || req.TimeAvailable == "" || req.LearningStyle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	now := s.now()
	path := s.hfClient.GenerateLearningPath(c.Request.Context(), req)
	profile := model.UserProfile{
		Goal:           req.Goal,
		CurrentLevel:   req.CurrentLevel,
		TimeAvailable:  req.TimeAvailable,
		LearningStyle:  req.LearningStyle,
		SpecificTopics: req.SpecificTopics,
	}
	formatted := responder.FormatLearningPath(path, profile)

	state := model.ConversationState{
		SessionID: uuid.NewString(),
		Profile:   profile,
		Path:      &path,
		History: []model.ChatMessage{
			{Role: "assistant", Content: formatted, TS: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Save(c.Request.Context(), &state); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save session failed"})
		return
	}

	log.Printf("[API] session created: id=%s goal=%q phases=%d", state.SessionID, req.Goal, len(path.Phases))
	c.JSON(http.StatusOK, createSessionResponse{
		SessionID:    state.SessionID,
		LearningPath: path,
		Response:     formatted,
	})
}

type sessionChatRequest struct {
	Message string `json:"message"`
}

// handleSessionChat 处理有状态的会话聊天轮次。
func (s *Server) handleSessionChat(c *gin.Context) {
	var req sessionChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	sessionID := c.Param("id")
	state, err := s.store.Get(c.Request.Context(), sessionID)
	if err != nil {
		if err == session.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load session failed"})
		return
	}

	response, updatedPath, err := s.sessionTurn(c.Request.Context(), state, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save session failed"})
		return
	}
	c.JSON(http.StatusOK, chatResponse{Response: response, UpdatedPath: updatedPath})
}

// sessionTurn 执行一轮会话：跑核心流水线，把消息写进历史，持久化更新后的路径。
func (s *Server) sessionTurn(ctx context.Context, state *model.ConversationState, message string) (string, *model.LearningPath, error) {
	now := s.now()
	response, updatedPath := s.runTurn(ctx, message, state.Context())

	state.History = append(state.History,
		model.ChatMessage{Role: "user", Content: message, TS: now},
		model.ChatMessage{Role: "assistant", Content: response, TS: now},
	)
	if updatedPath != nil {
		state.Path = updatedPath
	}
	state.UpdatedAt = now

	if err := s.store.Save(ctx, state); err != nil {
		return "", nil, err
	}
	return response, updatedPath, nil
}

// runTurn 单轮消息的统一执行路径。
//
// 路由规则与旧版一致：消息含 adjust/change/modify 且带有路线图时走调整分支；
// 否则配置了凭证时绕过完整流水线交给远端（内部自带兜底），
// 没有凭证时走本地完整流水线。
// 内部 panic 在这里兜住，转换成道歉文案，保证聊天轮次永远有输出。
func (s *Server) runTurn(ctx context.Context, message string, convCtx model.ConversationContext) (response string, updatedPath *model.LearningPath) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[API] chat turn panic: %v", r)
			response = apologyMessage
			updatedPath = nil
		}
	}()

	if isAdjustmentRequest(message) && convCtx.Path != nil {
		adjusted, explanation := s.responder.AdjustPath(*convCtx.Path, message, convCtx)
		return explanation, &adjusted
	}

	if s.hfClient.Enabled() {
		return s.hfClient.FollowUpResponse(ctx, message, responder.ContextString(convCtx)), nil
	}

	return s.responder.Respond(message, convCtx), nil
}

func isAdjustmentRequest(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "adjust") ||
		strings.Contains(lower, "change") ||
		strings.Contains(lower, "modify")
}

type streamRequest struct {
	Message string `json:"message"`
}

type streamResponse struct {
	Response    string              `json:"response"`
	UpdatedPath *model.LearningPath `json:"updated_path,omitempty"`
	Error       string              `json:"error,omitempty"`
}

// handleSessionStream 处理 WebSocket 连接：每个 JSON 帧一轮聊天，回写回复帧。
func (s *Server) handleSessionStream(c *gin.Context) {
	sessionID := c.Param("id")
	log.Printf("[API] websocket connection request for session: %s", sessionID)

	// 验证 Session 存在
	if _, err := s.store.Get(c.Request.Context(), sessionID); err != nil {
		if err == session.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load session failed"})
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[API] failed to upgrade websocket: %v", err)
		return
	}
	defer conn.Close()
	log.Printf("[API] websocket stream opened for session %s", sessionID)

	ctx := c.Request.Context()
	for {
		var req streamRequest
		if err := conn.ReadJSON(&req); err != nil {
			log.Printf("[API] websocket closed for session %s: %v", sessionID, err)
			return
		}
		if req.Message == "" {
			_ = conn.WriteJSON(streamResponse{Error: "message is required"})
			continue
		}

		// 每帧重取快照：HTTP 聊天端点可能并发更新了同一会话。
		state, err := s.store.Get(ctx, sessionID)
		if err != nil {
			_ = conn.WriteJSON(streamResponse{Error: "session not found"})
			return
		}

		response, updatedPath, err := s.sessionTurn(ctx, state, req.Message)
		if err != nil {
			_ = conn.WriteJSON(streamResponse{Error: "save session failed"})
			continue
		}
		if err := conn.WriteJSON(streamResponse{Response: response, UpdatedPath: updatedPath}); err != nil {
			log.Printf("[API] websocket write failed for session %s: %v", sessionID, err)
			return
		}
	}
}

func (s *Server) originAllowed(origin string) bool {
	for _, allowed := range s.config.CORS.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

func (s *Server) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		// 开发期：允许配置的本地前端；线上应改为白名单或同源。
		if s.originAllowed(origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
