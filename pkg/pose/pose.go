// Package pose provides body-pose estimation behind a narrow interface.
// The concrete backend is an external model consumed as a black box; the
// rest of the pipeline only sees ordered normalized landmarks.
package pose

// LandmarkCount is the number of keypoints in the skeleton topology.
// The count and order are fixed by the model schema; consumers parse the
// outgoing datagram positionally, so this must never change at runtime.
const LandmarkCount = 33

// Landmark is a single tracked body keypoint.
// X and Y are normalized to frame width/height (roughly [0,1]; points
// outside the frame can exceed that range). Z is relative depth with the
// hips as origin, on roughly the same scale as X. Visibility is the
// model's estimate that the point is visible and not occluded.
type Landmark struct {
	X          float64
	Y          float64
	Z          float64
	Visibility float64
}

// Pose is one detection: a fixed-length, ordered landmark list.
type Pose struct {
	Landmarks [LandmarkCount]Landmark

	// Score is the model's confidence that a body is present.
	Score float64
}

// Landmark indices in schema order.
const (
	Nose = iota
	LeftEyeInner
	LeftEye
	LeftEyeOuter
	RightEyeInner
	RightEye
	RightEyeOuter
	LeftEar
	RightEar
	MouthLeft
	MouthRight
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftPinky
	RightPinky
	LeftIndex
	RightIndex
	LeftThumb
	RightThumb
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
	LeftHeel
	RightHeel
	LeftFootIndex
	RightFootIndex
)

// LandmarkNames contains the human-readable name for each index.
var LandmarkNames = [LandmarkCount]string{
	"nose", "left_eye_inner", "left_eye", "left_eye_outer",
	"right_eye_inner", "right_eye", "right_eye_outer",
	"left_ear", "right_ear", "mouth_left", "mouth_right",
	"left_shoulder", "right_shoulder", "left_elbow", "right_elbow",
	"left_wrist", "right_wrist", "left_pinky", "right_pinky",
	"left_index", "right_index", "left_thumb", "right_thumb",
	"left_hip", "right_hip", "left_knee", "right_knee",
	"left_ankle", "right_ankle", "left_heel", "right_heel",
	"left_foot_index", "right_foot_index",
}

// Connection is an edge of the skeleton graph, as landmark index pairs.
type Connection struct {
	A, B int
}

// Connections is the skeleton topology used for overlay rendering.
var Connections = []Connection{
	// Face
	{Nose, LeftEyeInner}, {LeftEyeInner, LeftEye}, {LeftEye, LeftEyeOuter}, {LeftEyeOuter, LeftEar},
	{Nose, RightEyeInner}, {RightEyeInner, RightEye}, {RightEye, RightEyeOuter}, {RightEyeOuter, RightEar},
	{MouthLeft, MouthRight},
	// Torso
	{LeftShoulder, RightShoulder}, {LeftShoulder, LeftHip}, {RightShoulder, RightHip}, {LeftHip, RightHip},
	// Left arm and hand
	{LeftShoulder, LeftElbow}, {LeftElbow, LeftWrist},
	{LeftWrist, LeftPinky}, {LeftWrist, LeftIndex}, {LeftWrist, LeftThumb}, {LeftPinky, LeftIndex},
	// Right arm and hand
	{RightShoulder, RightElbow}, {RightElbow, RightWrist},
	{RightWrist, RightPinky}, {RightWrist, RightIndex}, {RightWrist, RightThumb}, {RightPinky, RightIndex},
	// Left leg and foot
	{LeftHip, LeftKnee}, {LeftKnee, LeftAnkle},
	{LeftAnkle, LeftHeel}, {LeftHeel, LeftFootIndex}, {LeftAnkle, LeftFootIndex},
	// Right leg and foot
	{RightHip, RightKnee}, {RightKnee, RightAnkle},
	{RightAnkle, RightHeel}, {RightHeel, RightFootIndex}, {RightAnkle, RightFootIndex},
}
