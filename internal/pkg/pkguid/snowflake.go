package pkguid

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates numeric IDs using the Snowflake algorithm.
type Snowflake struct {
	node *snowflake.Node
}

func generateRandomNodeID() (int64, error) {
	var nodeID int64
	if err := binary.Read(rand.Reader, binary.BigEndian, &nodeID); err != nil {
		return 0, err
	}

	return nodeID & (1<<snowflake.NodeBits - 1), nil
}

// NewSnowflake constructs a Snowflake generator. A negative nodeID picks a
// random node.
func NewSnowflake(nodeID int64) (*Snowflake, error) {
	if nodeID < 0 {
		id, err := generateRandomNodeID()
		if err != nil {
			return nil, err
		}
		nodeID = id
	}

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new unique numeric ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}

// GenerateString returns a new unique ID in base 10.
func (s *Snowflake) GenerateString() string {
	return strconv.FormatInt(s.Generate(), 10)
}
