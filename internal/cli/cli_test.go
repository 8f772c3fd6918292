package cli

import (
	"testing"
)

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	root := newRootCmd("test")

	want := []string{"names", "get", "allow", "set", "up", "down", "test"}
	for _, name := range want {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestGetCmd_HasLegacyAlias(t *testing.T) {
	root := newRootCmd("test")

	cmd, _, err := root.Find([]string{"get_val"})
	if err != nil {
		t.Fatalf("Find(get_val) error = %v", err)
	}
	if cmd.Name() != "get" {
		t.Errorf("get_val resolves to %q, want %q", cmd.Name(), "get")
	}
}

func TestCommands_ArgValidation(t *testing.T) {
	root := newRootCmd("test")

	tests := []struct {
		name    string
		command string
		args    []string
		wantErr bool
	}{
		{name: "names takes no args", command: "names", args: []string{"extra"}, wantErr: true},
		{name: "get needs a name", command: "get", args: nil, wantErr: true},
		{name: "get accepts one name", command: "get", args: []string{"att0"}, wantErr: false},
		{name: "set needs name and value", command: "set", args: []string{"att0"}, wantErr: true},
		{name: "set accepts name and value", command: "set", args: []string{"att0", "5"}, wantErr: false},
		{name: "up needs a name", command: "up", args: nil, wantErr: true},
		{name: "test needs a name", command: "test", args: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, err := root.Find([]string{tt.command})
			if err != nil {
				t.Fatalf("Find(%s) error = %v", tt.command, err)
			}

			err = cmd.Args(cmd, tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("%s args %v: error = %v, wantErr %t", tt.command, tt.args, err, tt.wantErr)
			}
		})
	}
}
