package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptpilot/exporter"
	"promptpilot/generator"
	"promptpilot/store"
)

// GET /api/tasks
func (s *Server) listTasks(c *gin.Context) {
	c.JSON(http.StatusOK, generator.Catalog())
}

// GET /api/state
func (s *Server) getState(c *gin.Context) {
	c.JSON(http.StatusOK, s.sess.State())
}

// PUT /api/state/task
func (s *Server) selectTask(c *gin.Context) {
	var req selectTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	task, err := generator.ParseTaskType(req.Type)
	if err != nil {
		writeError(c, err)
		return
	}
	st, err := s.sess.SelectTask(task)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// POST /api/state/panels/:panel/:op
func (s *Server) panel(c *gin.Context) {
	st, err := s.sess.Panel(c.Param("panel"), c.Param("op"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// POST /api/results
func (s *Server) createResult(c *gin.Context) {
	var req createResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var (
		result generator.Result
		err    error
	)
	if req.Type == "" {
		result, err = s.sess.Submit(c.Request.Context(), req.Prompt)
	} else {
		var task generator.TaskType
		task, err = generator.ParseTaskType(req.Type)
		if err == nil {
			result, err = s.sess.SubmitAs(c.Request.Context(), task, req.Prompt)
		}
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GET /api/results?q=&type=
func (s *Server) listResults(c *gin.Context) {
	q := store.Query{Search: c.Query("q")}
	if raw := c.Query("type"); raw != "" {
		task, err := generator.ParseTaskType(raw)
		if err != nil {
			writeError(c, err)
			return
		}
		q.Type = task
	}
	c.JSON(http.StatusOK, summarize(s.sess.History(q)))
}

// DELETE /api/results
func (s *Server) clearResults(c *gin.Context) {
	s.sess.Clear()
	c.Status(http.StatusNoContent)
}

// GET /api/results/:id
func (s *Server) getResult(c *gin.Context) {
	r, err := s.sess.Result(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// DELETE /api/results/:id
func (s *Server) deleteResult(c *gin.Context) {
	s.sess.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// GET /api/results/:id/download
func (s *Server) downloadResult(c *gin.Context) {
	p, err := s.sess.Download(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	attachment(c, p)
}

// GET /api/results/:id/preview
func (s *Server) previewResult(c *gin.Context) {
	r, err := s.sess.Result(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	html, err := exporter.RenderHTML(r.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// POST /api/results/:id/copy
func (s *Server) copyResult(c *gin.Context) {
	if err := s.sess.Copy(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/results/:id/share
func (s *Server) shareResult(c *gin.Context) {
	out, err := s.sess.Share(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/results/:id/select
func (s *Server) selectResult(c *gin.Context) {
	st, err := s.sess.SelectHistoryItem(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// POST /api/share
func (s *Server) shareLatest(c *gin.Context) {
	out, err := s.sess.ShareLatest(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/export?format=&id=
func (s *Server) exportQuery(c *gin.Context) {
	s.export(c, exportRequest{Format: c.Query("format"), IDs: c.QueryArray("id")})
}

// POST /api/export
func (s *Server) exportBody(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	s.export(c, req)
}

func (s *Server) export(c *gin.Context, req exportRequest) {
	format, err := exporter.ParseFormat(req.Format)
	if err != nil {
		writeError(c, err)
		return
	}
	if req.Save {
		path, err := s.sess.SaveExport(c.Request.Context(), format, req.IDs)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, exportSavedResponse{Path: path})
		return
	}
	p, err := s.sess.Export(format, req.IDs)
	if err != nil {
		writeError(c, err)
		return
	}
	attachment(c, p)
}

func attachment(c *gin.Context, p exporter.Payload) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", p.Filename))
	c.Data(http.StatusOK, p.ContentType, p.Data)
}
