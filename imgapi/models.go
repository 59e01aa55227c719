package imgapi

import (
	"net/url"

	"github.com/mhalicki/tritonkit/triton"
)

// ListImagesParams filters the /images listing.
type ListImagesParams struct {
	Name       string
	Version    string
	OS         string
	Owner      triton.OwnerUUID
	Account    triton.OwnerUUID
	State      string
	Public     *bool
	Type       string
	Tag        string
	BillingTag string
	Trait      string
	Channel    string
	Limit      int
	Offset     int
	Marker     string
	LatestOnly *bool
	SortBy     string
	SortOrder  string
}

func (p *ListImagesParams) values() url.Values {
	if p == nil {
		return nil
	}
	q := triton.NewQuery().
		Set("name", p.Name).
		Set("version", p.Version).
		Set("os", p.OS).
		SetUUID("owner", p.Owner).
		SetUUID("account", p.Account).
		Set("state", p.State)
	if p.Public != nil {
		q.SetBool("public", *p.Public)
	}
	q.Set("type", p.Type).
		Set("tag", p.Tag).
		Set("billing_tag", p.BillingTag).
		Set("trait", p.Trait).
		Set("channel", p.Channel).
		SetInt("limit", p.Limit).
		SetInt("offset", p.Offset).
		Set("marker", p.Marker)
	if p.LatestOnly != nil {
		q.SetBool("latest_only", *p.LatestOnly)
	}
	return q.
		Set("sort_by", p.SortBy).
		Set("sort_order", p.SortOrder).
		Values()
}

// Image is an image manifest as returned by IMGAPI.
type Image struct {
	UUID    triton.ImageUUID `json:"uuid"`
	Name    string           `json:"name"`
	Version string           `json:"version,omitempty"`
	OS      string           `json:"os"`
	Type    string           `json:"type"`
	State   string           `json:"state"`

	Description string `json:"description,omitempty"`
	Homepage    string `json:"homepage,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`

	Owner  *triton.OwnerUUID  `json:"owner,omitempty"`
	Public bool               `json:"public,omitempty"`
	ACL    []triton.OwnerUUID `json:"acl,omitempty"`

	Tags     StringMap `json:"tags,omitempty"`
	Disabled bool      `json:"disabled,omitempty"`

	Origin *triton.ImageUUID `json:"origin,omitempty"`
	Error  *ImageError       `json:"error,omitempty"`
	Files  []ImageFile       `json:"files,omitempty"`
	Icon   string            `json:"icon,omitempty"`

	Requirements *ImageRequirements `json:"requirements,omitempty"`
	Users        []ImageUser        `json:"users,omitempty"`
	BillingTags  []string           `json:"billing_tags,omitempty"`
	Traits       BoolMap            `json:"traits,omitempty"`
	Channels     []string           `json:"channels,omitempty"`
	ExpiresAt    string             `json:"expires_at,omitempty"`

	InheritedDirectories []string `json:"inherited_directories,omitempty"`
	GeneratePasswords    bool     `json:"generate_passwords,omitempty"`

	NICDriver  string `json:"nic_driver,omitempty"`
	DiskDriver string `json:"disk_driver,omitempty"`
	CPUType    string `json:"cpu_type,omitempty"`

	ImageSize   uint64 `json:"image_size,omitempty"`
	VirtualSize uint64 `json:"virtual_size,omitempty"`
	MinMemory   uint64 `json:"min_memory,omitempty"`
	MinDisk     uint64 `json:"min_disk,omitempty"`

	MinPlatform StringMap `json:"min_platform,omitempty"`

	Created string `json:"created,omitempty"`
	Updated string `json:"updated,omitempty"`
}

// ImageError carries failure details inside an image manifest.
type ImageError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ImageFile describes one file backing an image.
type ImageFile struct {
	Compression string `json:"compression,omitempty"`
	SHA1        string `json:"sha1"`
	Size        uint64 `json:"size"`
	Storage     string `json:"storage,omitempty"`
	MD5         string `json:"md5,omitempty"`
	Path        string `json:"path,omitempty"`
}

// ImageRequirements constrains how an image may be provisioned.
type ImageRequirements struct {
	Networks          []ImageNetworkRequirement `json:"networks,omitempty"`
	SSHKey            *bool                     `json:"ssh_key,omitempty"`
	Password          *bool                     `json:"password,omitempty"`
	MaxPhysicalMemory uint64                    `json:"max_physical_memory,omitempty"`
	MinPlatform       StringMap                 `json:"min_platform,omitempty"`
}

// ImageNetworkRequirement names a network the image expects.
type ImageNetworkRequirement struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IP          string `json:"ip,omitempty"`
	Primary     bool   `json:"primary,omitempty"`
}

// ImageUser is a system user provisioned with the image.
type ImageUser struct {
	Name    string `json:"name"`
	UID     uint32 `json:"uid,omitempty"`
	GID     uint32 `json:"gid,omitempty"`
	Shell   string `json:"shell,omitempty"`
	HomeDir string `json:"home_dir,omitempty"`
}

// CreateImageRequest is the payload for creating an image record.
type CreateImageRequest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	OS      string `json:"os"`
	Type    string `json:"type"`

	Description string `json:"description,omitempty"`
	Homepage    string `json:"homepage,omitempty"`

	Public *bool             `json:"public,omitempty"`
	Owner  *triton.OwnerUUID `json:"owner,omitempty"`
	Tags   StringMap         `json:"tags,omitempty"`
	Origin *triton.ImageUUID `json:"origin,omitempty"`

	Files        []ImageFile        `json:"files,omitempty"`
	Requirements *ImageRequirements `json:"requirements,omitempty"`
	Users        []ImageUser        `json:"users,omitempty"`
	BillingTags  []string           `json:"billing_tags,omitempty"`
	Traits       BoolMap            `json:"traits,omitempty"`
	Channels     []string           `json:"channels,omitempty"`

	NICDriver  string `json:"nic_driver,omitempty"`
	DiskDriver string `json:"disk_driver,omitempty"`
	CPUType    string `json:"cpu_type,omitempty"`

	ImageSize   uint64 `json:"image_size,omitempty"`
	VirtualSize uint64 `json:"virtual_size,omitempty"`
	MinMemory   uint64 `json:"min_memory,omitempty"`
	MinDisk     uint64 `json:"min_disk,omitempty"`

	GeneratePasswords    *bool    `json:"generate_passwords,omitempty"`
	InheritedDirectories []string `json:"inherited_directories,omitempty"`
}

// UpdateImageRequest mutates an existing image. Only the set fields are
// applied.
type UpdateImageRequest struct {
	Name        string `json:"name,omitempty"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
	Homepage    string `json:"homepage,omitempty"`

	Public   *bool  `json:"public,omitempty"`
	State    string `json:"state,omitempty"`
	Disabled *bool  `json:"disabled,omitempty"`

	Tags         StringMap          `json:"tags,omitempty"`
	BillingTags  []string           `json:"billing_tags,omitempty"`
	Requirements *ImageRequirements `json:"requirements,omitempty"`
	Traits       BoolMap            `json:"traits,omitempty"`
	Channels     []string           `json:"channels,omitempty"`

	GeneratePasswords    *bool    `json:"generate_passwords,omitempty"`
	InheritedDirectories []string `json:"inherited_directories,omitempty"`
}

// ImportImageRequest registers an externally stored image file.
type ImportImageRequest struct {
	UUID        triton.ImageUUID `json:"uuid"`
	Compression string           `json:"compression,omitempty"`
	SHA1        string           `json:"sha1"`
	Storage     string           `json:"storage,omitempty"`
	FilePath    string           `json:"file_path"`
	Size        uint64           `json:"size"`
	Source      string           `json:"source,omitempty"`
	MD5         string           `json:"md5,omitempty"`
}

// ExportImageRequest exports an image to Manta storage.
type ExportImageRequest struct {
	MantaPath string `json:"manta_path"`
	Storage   string `json:"storage,omitempty"`
}

// ImageAction enumerates the lifecycle endpoints under /images/{uuid}.
type ImageAction string

// Supported image actions.
const (
	ActionActivate ImageAction = "activate"
	ActionDisable  ImageAction = "disable"
	ActionEnable   ImageAction = "enable"
)
