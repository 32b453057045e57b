package server

import (
	"net/http"
	"time"

	"github.com/danmuck/avrctl/internal/devices"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type actionRequest struct {
	Args map[string]string `json:"args"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"uptime":    time.Since(s.appeared).String(),
			"component": s.name,
		})
	})

	s.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":     true,
			"uptime":    time.Since(s.appeared).String(),
			"component": s.name,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/devices", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"devices": devices.Names(),
		})
	})

	s.router.GET("/devices/:device/status", func(c *gin.Context) {
		device, ok := devices.Get(c.Param("device"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
			return
		}
		status, err := device.Status()
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"device": device.Name(),
			"status": status,
		})
	})

	s.router.GET("/devices/:device/actions", func(c *gin.Context) {
		device, ok := devices.Get(c.Param("device"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
			return
		}
		actions := gin.H{}
		for name, action := range device.Actions() {
			actions[name] = action.Description
		}
		c.JSON(http.StatusOK, gin.H{
			"device":  device.Name(),
			"actions": actions,
		})
	})

	s.router.POST("/devices/:device/actions/:action", func(c *gin.Context) {
		device, ok := devices.Get(c.Param("device"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
			return
		}
		action, ok := device.Actions()[c.Param("action")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "action not found"})
			return
		}

		var req actionRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		if err := action.Handler(c.Request.Context(), req.Args); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "accepted"})
	})
}
