package get_end_times

import getEndTimes "github.com/m04kA/SMC-ClassroomService/internal/usecase/get_end_times"

// EndTimesResponse HTTP response model
type EndTimesResponse struct {
	Room       string   `json:"room"`
	Date       string   `json:"date"` // "3/3/2025"
	Start      string   `json:"start"`
	StartTimes []string `json:"startTimes"`
	EndTimes   []string `json:"endTimes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getEndTimes.Response) *EndTimesResponse {
	out := &EndTimesResponse{
		Room:       resp.Room,
		Date:       resp.DateLabel,
		Start:      resp.Start,
		StartTimes: resp.StartTimes,
		EndTimes:   resp.EndTimes,
	}
	if out.StartTimes == nil {
		out.StartTimes = []string{}
	}
	if out.EndTimes == nil {
		out.EndTimes = []string{}
	}
	return out
}
