package shell

import "minishell/internal/cd"

func (s *Shell) executeBuiltin(args []string, line string) (bool, error) {
	switch args[0] {
	case "cd":
		_, rest := splitCommand(line)
		return true, s.changeDirectory(rest)
	case "exit":
		return true, errExit
	default:
		return false, nil
	}
}

// changeDirectory validates the raw text after "cd" itself, since quoted
// targets may contain spaces the tokenizer would split on.
func (s *Shell) changeDirectory(rest string) error {
	target, err := cd.ParseArgs(rest)
	if err != nil {
		return err
	}
	dir, err := s.resolver.Change(target)
	if err != nil {
		return err
	}
	s.log.Printf("cd: entered %s", dir)
	return nil
}
