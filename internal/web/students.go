package web

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rpzteam/students/internal/database"
	lf "github.com/rpzteam/students/internal/logfield"
	"github.com/rpzteam/students/internal/models"
)

type studentsService struct {
	webService
}

func setupStudentsService(server *server, r *gin.Engine) {
	s := studentsService{webService{server, server.config, server.logger.Named("students")}}

	r.GET("/student", s.list)
	r.POST("/student", s.create)
	r.DELETE("/student/:id", s.delete)
	r.PATCH("/student/:id", s.update)
}

// bindJSON decodes an optional JSON body; an empty body leaves obj untouched.
func bindJSON(c *gin.Context, obj interface{}) error {
	err := c.ShouldBindJSON(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return c.Error(err).SetType(gin.ErrorTypeBind)
}

func (s studentsService) list(c *gin.Context) {
	letter := c.Query("letter")
	if len(letter) > 0 {
		s.log.Debug("Listing students by first letter", lf.Letter(letter))
	} else {
		s.log.Debug("Listing all students")
	}

	students, err := s.server.db.ListStudents(c.Request.Context(), letter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	s.log.Debug("Listed students", lf.Count(len(students)))
	c.JSON(http.StatusOK, students)
}

func (s studentsService) create(c *gin.Context) {
	fields := &models.StudentFields{}
	if err := bindJSON(c, fields); err != nil {
		return
	}

	student, err := s.server.db.CreateStudent(c.Request.Context(), fields)
	if err != nil {
		_ = c.Error(err)
		return
	}
	s.log.Info("Created student", lf.StudentID(student.ID.Hex()))
	c.JSON(http.StatusOK, student)
}

func (s studentsService) delete(c *gin.Context) {
	id, err := database.ParseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	res, err := s.server.db.DeleteStudent(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	s.log.Info("Deleted student", lf.StudentID(id.Hex()), zap.Int64("deleted", res.DeletedCount))
	c.JSON(http.StatusOK, res)
}

// update matches on the query parameters; the path id is the fallback _id.
func (s studentsService) update(c *gin.Context) {
	criteria, err := database.ParseCriteria(c.Request.URL.Query())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !criteria.HasID() {
		id, err := database.ParseID(c.Param("id"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		criteria.ID = &id
	}

	patch := &models.StudentPatch{}
	if err := bindJSON(c, patch); err != nil {
		return
	}

	student, err := s.server.db.UpdateStudent(c.Request.Context(), criteria, patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	s.log.Info("Updated student", lf.StudentID(student.ID.Hex()))
	c.JSON(http.StatusOK, student)
}
