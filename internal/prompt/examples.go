package prompt

// ClassificationExamples is the few-shot block for message
// classification. Each example pairs a raw crisis message with the
// labels the model must produce.
const ClassificationExamples = `Example 1:
BREAKING: Water levels in Kelani River (Colombo) have reached 9.5 meters. Critical flood warning issued.
District: Colombo | Intent: Info | Priority: High
Explanation: A critical flood warning for Colombo district; the message informs the public, and the danger level makes it high priority.

Example 2:
SOS: 5 people trapped on a roof in Ja-Ela (Gampaha). Water rising fast. Need boat immediately.
District: Gampaha | Intent: Rescue | Priority: High
Explanation: An urgent rescue request in Gampaha district, so the intent is Rescue and the priority is high.

Example 3:
Update: Kandy road cleared near Peradeniya. Traffic moving slowly. No victims reported.
District: Kandy | Intent: Info | Priority: Low
Explanation: A routine road-condition update for Kandy district with no victims, so the priority is low.

Example 4:
Does anyone have extra dry rations for the camp in Gampaha?
District: Gampaha | Intent: Supply | Priority: Low
Explanation: A request for supplies in Gampaha district; no immediate danger, so the priority is low.

Example 5:
The government has allocated 50 million rupees for relief.
District: None | Intent: Other | Priority: Low
Explanation: General information about relief funds, not specific to any district, so the district is None and the priority is low.`

// ClassificationConstraints is the instruction block appended after the
// examples.
const ClassificationConstraints = `Follow the pattern in the examples: provide District: [Name] | Intent: [Category] | Priority: [High/Low]. If any field is not applicable, use None. Do not add any explanations. Intent should be one of [Info, Rescue, Supply, Other].`

// ClassificationFormat is the required answer shape.
const ClassificationFormat = `District: {district} | Intent: {intent} | Priority: {priority}`
