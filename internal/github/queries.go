package github

const fileAtHeadQuery = `query ($owner: String!, $name: String!, $qualifiedName: String!, $path: String!) {
  repository(owner: $owner, name: $name) {
    ref(qualifiedName: $qualifiedName) {
      target {
        oid
        ... on Commit {
          file(path: $path) {
            object {
              ... on Blob {
                text
              }
            }
          }
        }
      }
    }
  }
}`

const createCommitMutation = `mutation ($input: CreateCommitOnBranchInput!) {
  createCommitOnBranch(input: $input) {
    commit {
      url
    }
  }
}`
