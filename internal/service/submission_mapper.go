package service

import (
	"github.com/jinzhu/copier"
	"github.com/kennywonda/EMS-sub000/internal/dto"
	"github.com/kennywonda/EMS-sub000/internal/model"
	"github.com/rs/zerolog/log"
)

func toSubmissionDetailDTO(submission *model.Submission) (*dto.SubmissionDetailDTO, error) {
	var resp dto.SubmissionDetailDTO
	if err := copier.Copy(&resp, submission); err != nil {
		log.Error().Err(err).Uint("submissionID", submission.ID).Msg("Failed to copy submission model to detail DTO")
		return nil, err
	}
	if submission.Exam.ID != 0 {
		resp.ExamTitle = submission.Exam.Title
	}
	resp.Answers = make([]dto.AnswerResponseDTO, len(submission.Answers))
	for i, answer := range submission.Answers {
		copier.Copy(&resp.Answers[i], &answer)
	}
	return &resp, nil
}

func toSubmissionSummaryDTOs(submissions []model.Submission) []dto.SubmissionSummaryDTO {
	summaries := make([]dto.SubmissionSummaryDTO, 0, len(submissions))
	for _, submission := range submissions {
		var summary dto.SubmissionSummaryDTO
		if err := copier.Copy(&summary, &submission); err != nil {
			log.Error().Err(err).Uint("submissionID", submission.ID).Msg("Failed to copy submission to summary DTO")
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
