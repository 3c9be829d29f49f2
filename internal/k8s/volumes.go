package k8s

import (
	"strings"

	"k8s-translator/internal/common"
	"k8s-translator/internal/conversion"
	"k8s-translator/internal/document"
	"k8s-translator/internal/path"
)

const containersSegment = "containers"

type volume struct {
	host      string
	container string
}

func readVolumes(v any) ([]volume, error) {
	seq, ok := conversion.Seq(v)
	if !ok {
		return nil, conversion.Invalid(v, "volumes must be a list")
	}

	out := make([]volume, 0, len(seq))

	for _, item := range seq {
		m, ok := conversion.Map(item)
		if !ok {
			return nil, conversion.Invalid(item, "volume must be a map")
		}

		host, _ := m["host"].(string)
		container, _ := m["container"].(string)

		if host == "" || container == "" {
			return nil, conversion.Invalid(item, "volume needs host and container paths")
		}

		out = append(out, volume{host: host, container: container})
	}

	return out, nil
}

// volumeName derives a volume name from its host path.
func volumeName(hostPath string) string {
	if hostPath == "/" {
		return "root"
	}

	return strings.ReplaceAll(hostPath, "/", "")
}

// volumesTo writes mounts on container paths and host path volumes elsewhere.
func volumesTo(v any, dst path.Path) (any, error) {
	volumes, err := readVolumes(v)
	if err != nil {
		return nil, err
	}

	if len(volumes) == 0 {
		return nil, nil
	}

	mounts := dst.Contains(containersSegment)
	out := make([]any, len(volumes))

	for i, vol := range volumes {
		if mounts {
			out[i] = map[string]any{
				"name":      volumeName(vol.host),
				"mountPath": vol.container,
			}

			continue
		}

		out[i] = map[string]any{
			"name":     volumeName(vol.host),
			"hostPath": map[string]any{"path": vol.host},
		}
	}

	return out, nil
}

// volumesFrom pairs the i-th mount with the i-th volume. Extra entries on
// either side are dropped.
func volumesFrom(args ...conversion.Arg) (any, error) {
	mountsArg, volumesArg := common.Unpack2(args)
	if mountsArg.Value == nil || volumesArg.Value == nil {
		return nil, nil
	}

	mounts, ok := conversion.Seq(mountsArg.Value)
	if !ok {
		return nil, conversion.Invalid(mountsArg.Value, "volume mounts must be a list")
	}

	volumes, ok := conversion.Seq(volumesArg.Value)
	if !ok {
		return nil, conversion.Invalid(volumesArg.Value, "volumes must be a list")
	}

	var invalid error

	out := common.ZipWith(mounts, volumes, func(mount, vol any) any {
		m, _ := conversion.Map(mount)
		hostPath, _ := document.Get(vol, path.Path{"hostPath", "path"})
		host, _ := hostPath.(string)
		container, _ := m["mountPath"].(string)

		if host == "" || container == "" {
			if invalid == nil {
				invalid = conversion.Invalid(vol, "volume has no host path or mount path")
			}

			return nil
		}

		return map[string]any{"host": host, "container": container}
	})

	if invalid != nil {
		return nil, invalid
	}

	if len(out) == 0 {
		return nil, nil
	}

	return out, nil
}
