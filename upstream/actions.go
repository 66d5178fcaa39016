package upstream

import "context"

// Action names understood by the backend script.
const (
	ActionGetUsers    = "getUsers"
	ActionGetProjects = "getProjects"
	ActionGetItems    = "getItems"
	ActionGetRequests = "getRequests"
	ActionGetReturns  = "getReturns"
	ActionGetWorkLogs = "getWorkLogs"

	ActionSubmitRequest       = "submitRequest"
	ActionSubmitReturn        = "submitReturnRequest"
	ActionSubmitWorkLog       = "submitWorkLog"
	ActionUpdateStatus        = "updateStatus"
	ActionUpdateItemStatus    = "updateItemStatus"
	ActionUpdateReturnStatus  = "updateReturnStatus"
	ActionUpdateReturnItem    = "updateReturnItemStatus"
	ActionUploadImages        = "uploadImages"
)

// ProjectRow is one row of the project sheet. The same project name appears
// once per term/engineering-item combination.
type ProjectRow struct {
	ProjectName     string `json:"projectName"`
	Term            string `json:"term"`
	EngineeringItem string `json:"engineeringItem"`
}

// UploadFile is one compressed image in a batch upload.
type UploadFile struct {
	FileData string `json:"fileData"`
	FileName string `json:"fileName"`
}

type UploadRequest struct {
	Files   []UploadFile `json:"files"`
	Date    string       `json:"date"`
	Project string       `json:"project"`
}

type UploadResult struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	URLs      []string `json:"urls"`
	FolderURL string   `json:"folderUrl"`
}

func (c *Client) Users(ctx context.Context) ([]string, error) {
	var users []string
	if err := c.GetAction(ctx, ActionGetUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) Projects(ctx context.Context) ([]ProjectRow, error) {
	var projects []ProjectRow
	if err := c.GetAction(ctx, ActionGetProjects, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) UploadImages(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	var result UploadResult
	if _, err := c.PostAction(ctx, ActionUploadImages, req, &result); err != nil {
		return nil, err
	}
	if result.Status == "error" {
		return nil, &RemoteError{Message: result.Message}
	}
	return &result, nil
}
