package analysis_test

import "context"

// fakeModel replays canned replies in order and records every prompt it
// receives. The last reply repeats once the script runs out.
type fakeModel struct {
	replies []string
	err     error
	prompts []string
}

func (f *fakeModel) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", nil
	}
	reply := f.replies[0]
	if len(f.replies) > 1 {
		f.replies = f.replies[1:]
	}
	return reply, nil
}
