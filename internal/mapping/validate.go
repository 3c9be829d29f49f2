package mapping

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"k8s-translator/internal/common"
	"k8s-translator/internal/conversion"
	"k8s-translator/internal/diagnostic"
	"k8s-translator/internal/keyed"
	"k8s-translator/internal/match"
	"k8s-translator/internal/path"
)

// Validate validates mapping tables against a conversion registry.
// This is a structural validation step run once, before any table is used;
// it does not inspect documents.
func Validate(mf *MappingFile, registry *conversion.Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	seenTables := map[string]struct{}{}
	usedKeys := map[keyed.ID]struct{}{}

	for i := range mf.Tables {
		def := &mf.Tables[i]

		if strings.TrimSpace(def.Name) == "" {
			res.AddError("table_name_missing", fmt.Sprintf("table %d has no name", i), "", "")
			continue
		}

		if _, ok := seenTables[def.Name]; ok {
			res.AddError("duplicate_table", fmt.Sprintf("duplicate table %q", def.Name), def.Name, "")
			continue
		}

		seenTables[def.Name] = struct{}{}

		validateTable(res, def, registry, usedKeys)
	}

	tableKeys := fieldKeys(mf)

	for _, key := range registry.Keys() {
		if _, ok := usedKeys[keyed.IDOf(key)]; !ok {
			res.AddWarning("unused_conversion",
				fmt.Sprintf("conversion for %q is not used by any table", key.String()), "", key.String())
			res.Warnings[len(res.Warnings)-1].Suggestions = match.Suggest(key.String(), tableKeys, match.DefaultThreshold)
		}
	}

	return res
}

// validateTable validates a single table definition.
func validateTable(
	res *diagnostic.Diagnostics,
	def *TableDef,
	registry *conversion.Registry,
	usedKeys map[keyed.ID]struct{},
) {
	direction := def.Direction
	if direction == "" {
		direction = DirectionBoth
	}

	if !direction.IsValid() {
		res.AddError("invalid_direction", fmt.Sprintf("invalid direction %q", def.Direction), def.Name, "")
		return
	}

	seenKeys := map[keyed.ID]struct{}{}
	writers := map[keyed.ID][]string{}
	pathByID := map[keyed.ID]path.Path{}

	for i := range def.Fields {
		fm := &def.Fields[i]
		keyStr := fm.Key.String()

		if fm.Key.IsEmpty() {
			res.AddError("empty_key", fmt.Sprintf("field %d has an empty key", i), def.Name, "")
			continue
		}

		if err := fm.Key.Validate(); err != nil {
			res.AddError("invalid_key", err.Error(), def.Name, keyStr)
			continue
		}

		if err := validateRooted(fm.Key.Path); err != nil {
			res.AddError("unrooted_key", err.Error(), def.Name, keyStr)
			continue
		}

		id := keyed.IDOf(fm.Key.Path)
		usedKeys[id] = struct{}{}

		if _, ok := seenKeys[id]; ok {
			res.AddWarning("duplicate_key",
				fmt.Sprintf("key %q is defined more than once; the last definition wins", keyStr), def.Name, keyStr)
		}

		seenKeys[id] = struct{}{}

		validatePaths(res, def.Name, fm, writers, pathByID)
		validateConversions(res, def.Name, direction, fm, registry)
	}

	reportOverlaps(res, def.Name, writers, pathByID)
}

func validatePaths(
	res *diagnostic.Diagnostics,
	table string,
	fm *FieldMapping,
	writers map[keyed.ID][]string,
	pathByID map[keyed.ID]path.Path,
) {
	keyStr := fm.Key.String()

	if fm.GetCardinality() == CardinalityEmpty {
		res.AddWarning("no_paths", fmt.Sprintf("key %q maps to no paths", keyStr), table, keyStr)
		return
	}

	for _, p := range fm.Paths {
		if err := validateRooted(p); err != nil {
			res.AddError("unrooted_path", err.Error(), table, keyStr)
			continue
		}

		if err := p.Validate(); err != nil {
			res.AddError("invalid_path", err.Error(), table, p.String())
			continue
		}

		id := keyed.IDOf(p)
		pathByID[id] = p

		if !slices.Contains(writers[id], keyStr) {
			writers[id] = append(writers[id], keyStr)
		}
	}
}

func validateConversions(
	res *diagnostic.Diagnostics,
	table string,
	direction Direction,
	fm *FieldMapping,
	registry *conversion.Registry,
) {
	keyStr := fm.Key.String()

	// Identity only reads the first value, so a fan-in field silently drops
	// the rest without its own reverse conversion.
	if direction.Reverse() && fm.GetCardinality() == CardinalityOneToMany && !registry.HasReverse(fm.Key.Path) {
		res.AddError("fan_in_without_reverse",
			fmt.Sprintf("key %q reads %d paths but has no reverse conversion", keyStr, len(fm.Paths)),
			table, keyStr)
	}
}

// reportOverlaps notes paths that more than one key writes, and paths
// nested inside another key's path.
func reportOverlaps(
	res *diagnostic.Diagnostics,
	table string,
	writers map[keyed.ID][]string,
	pathByID map[keyed.ID]path.Path,
) {
	for _, id := range sortedIDs(writers) {
		keys := writers[id]
		p := pathByID[id]

		if common.IsMultiple(keys) {
			res.AddInfo("overlapping_path",
				fmt.Sprintf("path written by keys %s; the last key processed wins", strings.Join(keys, ", ")),
				table, p.String())
		}

		for _, otherID := range sortedIDs(writers) {
			other := pathByID[otherID]
			if otherID == id || !other.HasPrefix(p) {
				continue
			}

			res.AddInfo("nested_path",
				fmt.Sprintf("path %q is nested inside %q; values are merged", other.String(), p.String()),
				table, other.String())
		}
	}
}

func sortedIDs(m map[keyed.ID][]string) []keyed.ID {
	return slices.Sorted(maps.Keys(m))
}

// fieldKeys lists every valid field key of mf in dotted form, sorted.
func fieldKeys(mf *MappingFile) []string {
	seen := map[string]struct{}{}

	for i := range mf.Tables {
		for _, fm := range mf.Tables[i].Fields {
			if fm.Key.IsEmpty() || fm.Key.Validate() != nil {
				continue
			}

			seen[fm.Key.String()] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}
