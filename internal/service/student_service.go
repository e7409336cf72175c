package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/kennywonda/EMS-sub000/internal/apperr"
	"github.com/kennywonda/EMS-sub000/internal/dto"
	"github.com/kennywonda/EMS-sub000/internal/model"
	"github.com/kennywonda/EMS-sub000/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StudentService is the student directory consumed by the grading engine for
// denormalization into submission records.
type StudentService interface {
	RegisterStudent(req dto.StudentCreateDTO) (*dto.StudentResponseDTO, error)
	GetStudent(studentID uint) (*dto.StudentResponseDTO, error)
	ListStudents() ([]dto.StudentResponseDTO, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) RegisterStudent(req dto.StudentCreateDTO) (*dto.StudentResponseDTO, error) {
	student := model.Student{
		Name:      req.Name,
		DisplayID: req.DisplayID,
	}
	if err := s.studentRepo.Create(&student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validation("student with display ID %q already exists", req.DisplayID)
		}
		log.Error().Err(err).Str("displayID", req.DisplayID).Msg("Failed to register student")
		return nil, fmt.Errorf("registering student: %w", err)
	}

	var resp dto.StudentResponseDTO
	copier.Copy(&resp, &student)
	return &resp, nil
}

func (s *studentService) GetStudent(studentID uint) (*dto.StudentResponseDTO, error) {
	student, err := s.studentRepo.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("student", studentID)
		}
		return nil, fmt.Errorf("loading student %d: %w", studentID, err)
	}
	var resp dto.StudentResponseDTO
	copier.Copy(&resp, student)
	return &resp, nil
}

func (s *studentService) ListStudents() ([]dto.StudentResponseDTO, error) {
	students, err := s.studentRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	dtos := make([]dto.StudentResponseDTO, 0, len(students))
	for _, student := range students {
		var resp dto.StudentResponseDTO
		copier.Copy(&resp, &student)
		dtos = append(dtos, resp)
	}
	return dtos, nil
}
