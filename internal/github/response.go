package github

import "encoding/json"

// graphQLRequest is the POST body of every GraphQL call.
type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type graphQLError struct {
	Type    string   `json:"type"`
	Message string   `json:"message"`
	Path    []string `json:"path"`
}

type fileAtHeadData struct {
	Repository *struct {
		Ref *struct {
			Target struct {
				OID  string `json:"oid"`
				File *struct {
					Object *struct {
						Text *string `json:"text"`
					} `json:"object"`
				} `json:"file"`
			} `json:"target"`
		} `json:"ref"`
	} `json:"repository"`
}

type createCommitData struct {
	CreateCommitOnBranch *struct {
		Commit struct {
			URL string `json:"url"`
		} `json:"commit"`
	} `json:"createCommitOnBranch"`
}

type commitInput struct {
	ClientMutationID string           `json:"clientMutationId"`
	Branch           branchInput      `json:"branch"`
	ExpectedHeadOID  string           `json:"expectedHeadOid"`
	Message          commitMessage    `json:"message"`
	FileChanges      fileChangesInput `json:"fileChanges"`
}

type branchInput struct {
	RepositoryNameWithOwner string `json:"repositoryNameWithOwner"`
	BranchName              string `json:"branchName"`
}

type commitMessage struct {
	Headline string `json:"headline"`
	Body     string `json:"body,omitempty"`
}

type fileChangesInput struct {
	Additions []fileAddition `json:"additions"`
}

type fileAddition struct {
	Path     string `json:"path"`
	Contents string `json:"contents"` // base64
}
