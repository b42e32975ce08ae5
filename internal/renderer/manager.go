package renderer

import (
	"errors"

	"GopherQueue/internal/logger"
	"GopherQueue/internal/queue"

	"go.uber.org/zap"
)

var ErrNilCamera = errors.New("renderer: nil camera")

const noTexture = ^uint32(0)

// FrameStats counts the work done by a Manager since the last ResetStats
type FrameStats struct {
	DrawCalls       int
	ShaderSwitches  int
	TextureSwitches int
	ShadowDraws     int
	Buckets         map[queue.Bucket]int
}

// Manager is the render manager the queue hands sorted geometries to
type Manager struct {
	// RenderTranslucent draws the Translucent bucket as part of the viewport.
	// Disable it when a post processing pass drains that bucket itself.
	RenderTranslucent bool

	backend Backend
	log     *zap.Logger

	currentShader    string
	shaderBound      bool
	currentTextureID uint32
	bucket           queue.Bucket
	shadowPass       bool
	stats            FrameStats
}

func NewManager(backend Backend, log *zap.Logger) *Manager {
	m := &Manager{
		RenderTranslucent: true,
		backend:           backend,
		log:               logger.Or(log),
	}
	m.ResetStats()
	return m
}

// RenderGeometry draws g, switching shader and texture only when they differ
// from the previous draw.
func (m *Manager) RenderGeometry(g queue.Geometry) {
	geom, ok := g.(*Geometry)
	if !ok {
		m.log.Warn("Unsupported geometry type handed to render manager", zap.Any("geometry", g))
		return
	}
	if geom == nil {
		m.log.Debug("Skipping nil geometry")
		return
	}

	mat := geom.material()
	if !m.shaderBound || mat.Shader != m.currentShader {
		m.backend.UseShader(mat.Shader)
		m.currentShader = mat.Shader
		m.shaderBound = true
		m.stats.ShaderSwitches++
	}
	if mat.TextureID != m.currentTextureID {
		m.backend.BindTexture(mat.TextureID)
		m.currentTextureID = mat.TextureID
		m.stats.TextureSwitches++
	}

	m.backend.Draw(geom)
	m.stats.DrawCalls++
	if m.shadowPass {
		m.stats.ShadowDraws++
	} else {
		m.stats.Buckets[m.bucket]++
	}
}

// RenderViewPort drains the queue bucket by bucket: opaque, sky,
// transparent, translucent and finally gui.
func (m *Manager) RenderViewPort(q *queue.RenderQueue, cam *Camera, clear bool) error {
	if cam == nil {
		return ErrNilCamera
	}
	for _, b := range queue.Buckets {
		if b == queue.Translucent && !m.RenderTranslucent {
			continue
		}
		empty, err := q.IsQueueEmpty(b)
		if err != nil {
			return err
		}
		if empty {
			continue
		}
		m.bucket = b
		if err := q.Render(b, m, cam, clear); err != nil {
			return err
		}
	}
	return nil
}

// RenderShadows drains the cast or receive shadow list
func (m *Manager) RenderShadows(q *queue.RenderQueue, mode queue.ShadowMode, cam *Camera, clear bool) error {
	if cam == nil {
		return ErrNilCamera
	}
	m.shadowPass = true
	defer func() { m.shadowPass = false }()
	return q.RenderShadow(mode, m, cam, clear)
}

// Stats returns a copy of the counters
func (m *Manager) Stats() FrameStats {
	s := m.stats
	s.Buckets = make(map[queue.Bucket]int, len(m.stats.Buckets))
	for b, n := range m.stats.Buckets {
		s.Buckets[b] = n
	}
	return s
}

// ResetStats zeroes the counters and forgets the bound state. Call it at the
// start of every frame.
func (m *Manager) ResetStats() {
	m.stats = FrameStats{Buckets: make(map[queue.Bucket]int)}
	m.shaderBound = false
	m.currentShader = ""
	m.currentTextureID = noTexture
}

// LogStats writes the counters at debug level
func (m *Manager) LogStats() {
	m.log.Debug("Frame stats",
		zap.Int("drawCalls", m.stats.DrawCalls),
		zap.Int("shaderSwitches", m.stats.ShaderSwitches),
		zap.Int("textureSwitches", m.stats.TextureSwitches),
		zap.Int("shadowDraws", m.stats.ShadowDraws))
}
