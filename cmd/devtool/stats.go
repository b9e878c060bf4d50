package main

import (
	"fmt"

	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/droptable"
)

// StatsCommand compiles a drop resource and reports what it contains.
type StatsCommand struct{}

func (c *StatsCommand) Name() string {
	return "stats"
}

func (c *StatsCommand) Description() string {
	return "Compile drop tables and report counts: stats [npc|thieving] [path]"
}

func (c *StatsCommand) Run(args []string) error {
	domains := []domain.DropDomain{domain.DomainNPC, domain.DomainThieving}
	path := ""
	if len(args) > 0 {
		domains = []domain.DropDomain{domain.DropDomain(args[0])}
	}
	if len(args) > 1 {
		path = args[1]
		PrintInfo("Reading drops from %s", path)
	}

	for _, d := range domains {
		source, err := droptable.SourceFor(d, path)
		if err != nil {
			return err
		}
		data, err := source()
		if err != nil {
			return err
		}

		_, stats := droptable.CompileWithStats(data)
		PrintHeader(fmt.Sprintf("Drop table: %s", d))
		fmt.Printf("  sources: %d\n  records: %d\n  entries: %d\n", stats.Sources, stats.Records, stats.Entries)
		if stats.Skipped > 0 {
			PrintWarning("%d records skipped", stats.Skipped)
		} else {
			PrintSuccess("No records skipped")
		}
	}
	return nil
}
